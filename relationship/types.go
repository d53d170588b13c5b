// Package relationship defines options, result terms, and errors for the
// coefficient of relationship.
package relationship

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lineage/core"
)

// ErrViewNil is returned when a nil core.View is passed.
var ErrViewNil = errors.New("relationship: view is nil")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("relationship: invalid option supplied")

// Option configures the relationship calculators.
type Option func(*Options)

// Options holds the tunables shared by Coefficient, Contributions,
// CommonAncestors, and Inbreeding.
type Options struct {
	// MaxDepth, if > 0, only considers ancestors within MaxDepth generations
	// of each queried individual. 0 means unbounded.
	MaxDepth int

	err error
}

// DefaultOptions returns unbounded Options.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxDepth bounds the ancestor search. The contribution of an ancestor g
// generations back is at most 0.5^g, so a depth around 16 loses less than
// 1e-5 of the coefficient.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Contribution is one qualifying term of the coefficient: a common ancestor
// and a pair of independent lineage paths from it to the two individuals.
type Contribution struct {
	// Ancestor is the common ancestor both paths start from.
	Ancestor core.ID

	// Path1 and Path2 are read descendant-first, ancestor-last.
	Path1 []core.ID
	Path2 []core.ID

	// Generations1 and Generations2 count edges along each path.
	Generations1 int
	Generations2 int

	// Value is 0.5^(Generations1+Generations2).
	Value float64
}
