package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/lineage/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRelate_Text(t *testing.T) {
	out, _, err := run(t, "relate", "siblings", "C", "D")
	require.NoError(t, err)
	assert.Equal(t, "r(C, D) = 0.5\n", out)
}

func TestRelate_ExplainJSON(t *testing.T) {
	out, _, err := run(t, "relate", "second-cousins", "D", "M", "--explain", "-o", "json")
	require.NoError(t, err)

	var res relateResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 0.1875, res.Coefficient, 1e-12)
	require.Len(t, res.Terms, 3)
	assert.Equal(t, "D", res.Terms[2].Ancestor)
}

func TestRelate_ByNumericID(t *testing.T) {
	out, _, err := run(t, "relate", "siblings", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "r(C, D) = 0.5\n", out)
}

func TestSeparation_YAML(t *testing.T) {
	out, _, err := run(t, "separation", "first-cousins", "G", "H", "--output", "yaml")
	require.NoError(t, err)

	var res separationResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Degree)
	assert.Equal(t, []string{"G", "D", "A", "E", "H"}, res.Path)
}

func TestAncestors_Depth(t *testing.T) {
	out, _, err := run(t, "ancestors", "second-cousins", "M", "--depth", "1")
	require.NoError(t, err)
	assert.Equal(t, "ancestors of M: K, L, M\n", out)
}

func TestPaths_Text(t *testing.T) {
	out, _, err := run(t, "paths", "diamond", "A", "D")
	require.NoError(t, err)
	assert.Equal(t, "D ← B ← A\nD ← C ← A\n", out)

	out, _, err = run(t, "paths", "diamond", "D", "A")
	require.NoError(t, err)
	assert.Equal(t, "A is not a descendant of D\n", out)
}

func TestShowAndSamples(t *testing.T) {
	out, _, err := run(t, "show", "raccoons")
	require.NoError(t, err)
	assert.Contains(t, out, "Billy")
	assert.Contains(t, out, "Judy, Jamey")

	out, errOut, err := run(t, "samples", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "second-cousins")
	assert.Contains(t, errOut, "sample loaded")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "relate", "siblings", "C", "Q")
	require.ErrorIs(t, err, core.ErrUnknownIndividual)

	_, _, err = run(t, "relate", "nowhere", "C", "D")
	require.Error(t, err)

	_, _, err = run(t, "samples", "-o", "xml")
	require.ErrorContains(t, err, "unknown output format")

	_, _, err = run(t, "relate", "siblings", "C")
	require.Error(t, err)
}
