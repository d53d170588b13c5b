// Package core_test contains test helpers for lineage/core.
//
// Purpose:
//   - Provide small, deterministic pedigree fixtures shared by core tests.
//   - Keep label constants in one place so failure output stays compact.

package core_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lineage/core"
	"github.com/stretchr/testify/require"
)

// Common payload labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"
	LabelE = "E"
)

// NConcurrentReaders is the reader fan-out used by the concurrency test.
const NConcurrentReaders = 50

// buildSiblings RETURNS roots A(0), B(1) and their children C(2), D(3).
func buildSiblings(t *testing.T) *core.Pedigree[string] {
	t.Helper()

	p := core.New[string]()
	a := p.Add(LabelA, core.None, core.None)
	b := p.Add(LabelB, core.None, core.None)
	p.Add(LabelC, a, b)
	p.Add(LabelD, a, b)
	require.Equal(t, 4, p.Len())

	return p
}

// newCapturingPedigree RETURNS a pedigree whose diagnostics land in buf.
func newCapturingPedigree() (*core.Pedigree[string], *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return core.New[string](core.WithLogger(logger)), buf
}
