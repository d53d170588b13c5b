// Package core defines the Pedigree arena, the Individual record, and the
// read-only View that every traversal package consumes.
//
// This file declares ID, Sex, Individual, Pedigree, PedigreeOption,
// IndividualOption, the View interface, sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrUnknownIndividual - an ID does not address an individual in the arena.
//	ErrCycle             - a parent edge would make an individual its own ancestor.
//	ErrTooManyParents    - the child already carries two parent edges.
//	ErrDuplicateParent   - the same parent would be linked twice.
package core

import (
	"errors"
	"log/slog"
	"sync"
)

// Sentinel errors for core pedigree operations.
var (
	// ErrUnknownIndividual indicates an operation referenced an ID outside the arena.
	ErrUnknownIndividual = errors.New("core: unknown individual")

	// ErrCycle indicates a parent edge was rejected because the child is
	// already an ancestor of (or identical to) the proposed parent.
	ErrCycle = errors.New("core: edge would create a cycle")

	// ErrTooManyParents indicates the child already has MaxParents parents.
	ErrTooManyParents = errors.New("core: individual already has two parents")

	// ErrDuplicateParent indicates the parent is already linked to the child.
	ErrDuplicateParent = errors.New("core: parent already linked")
)

// MaxParents is the biological upper bound on parent edges per individual.
const MaxParents = 2

// ID addresses an individual by its position in the arena.
// IDs are assigned sequentially from 0 and never reused.
type ID int

// None stands for an absent parent in Add and AddParent.
const None ID = -1

// Sex is descriptive metadata; the engine never validates it against parentage.
type Sex uint8

const (
	Unknown Sex = iota
	Female
	Male
	// Hermaphrodite is descriptive only; selfing (one individual as both
	// parents) is not modelled, see LinkParent.
	Hermaphrodite
)

// String returns a lower-case name for s.
func (s Sex) String() string {
	switch s {
	case Female:
		return "female"
	case Male:
		return "male"
	case Hermaphrodite:
		return "hermaphrodite"
	default:
		return "unknown"
	}
}

// Individual is a snapshot of one arena record.
//
// Parents and Children are copies; mutating them does not affect the Pedigree.
// Inbreeding is reserved for the embedding application and is never read by
// the traversal packages.
type Individual[T any] struct {
	ID       ID
	Payload  T
	Parents  []ID
	Children []ID
	Sex      Sex
	Fertile  bool
	Alive    bool

	// Inbreeding is nil until set through Pedigree.SetInbreeding.
	Inbreeding *float64
}

// record is the arena-internal mutable form of an Individual.
type record[T any] struct {
	payload    T
	parents    []ID
	children   []ID
	sex        Sex
	fertile    bool
	alive      bool
	inbreeding *float64
}

// View is the read-only surface traversal algorithms need.
// It never exposes payloads.
type View interface {
	// Len reports how many individuals exist; valid IDs are [0, Len()).
	Len() int

	// Parents returns the parent IDs of id in insertion order (nil if unknown).
	Parents(id ID) []ID

	// Children returns the child IDs of id in insertion order (nil if unknown).
	Children(id ID) []ID
}

// PedigreeOption configures a Pedigree before use.
type PedigreeOption func(*pedigreeConfig)

type pedigreeConfig struct {
	logger   *slog.Logger
	capacity int
}

// WithLogger routes diagnostics (rejected edges) to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) PedigreeOption {
	return func(c *pedigreeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCapacity preallocates room for n individuals.
func WithCapacity(n int) PedigreeOption {
	return func(c *pedigreeConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// IndividualOption sets descriptive metadata on a new individual.
type IndividualOption func(*individualConfig)

type individualConfig struct {
	sex     Sex
	fertile bool
	alive   bool
}

// WithSex records the sex of the new individual.
func WithSex(s Sex) IndividualOption {
	return func(c *individualConfig) { c.sex = s }
}

// WithFertile overrides the default fertile=true flag.
func WithFertile(fertile bool) IndividualOption {
	return func(c *individualConfig) { c.fertile = fertile }
}

// WithAlive overrides the default alive=true flag.
func WithAlive(alive bool) IndividualOption {
	return func(c *individualConfig) { c.alive = alive }
}

// Pedigree is an append-only arena of individuals linked by parent/child edges.
//
// The edge set is always a DAG with at most two parents per individual, and
// linkage is bidirectionally consistent: p ∈ child.parents ⇔ child ∈ p.children.
// mu serializes appends; concurrent readers are safe once population is done,
// and also while it runs, because every accessor takes the read lock.
type Pedigree[T any] struct {
	mu      sync.RWMutex
	records []record[T]
	log     *slog.Logger
}

// New creates an empty Pedigree.
// Complexity: O(1) (O(capacity) with WithCapacity).
func New[T any](opts ...PedigreeOption) *Pedigree[T] {
	cfg := pedigreeConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pedigree[T]{
		records: make([]record[T], 0, cfg.capacity),
		log:     cfg.logger,
	}
}

// compile-time check that *Pedigree satisfies View.
var _ View = (*Pedigree[struct{}])(nil)
