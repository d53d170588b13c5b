// Package samples builds the small, hard-coded pedigrees used by the CLI,
// the examples, and the traversal tests. Every sample is constructed in code;
// nothing is parsed.
package samples

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/lineage/core"
)

// ErrUnknownSample is returned by Build for a name not in the catalog.
var ErrUnknownSample = errors.New("samples: unknown sample")

// ErrUnknownLabel is returned by Sample.ID for a label not in the sample, and
// by Build when a catalog entry names a parent before adding it.
var ErrUnknownLabel = errors.New("samples: unknown label")

// Sample is a built pedigree plus a label → ID index.
type Sample struct {
	Name        string
	Description string
	Pedigree    *core.Pedigree[string]

	ids map[string]core.ID
}

// ID resolves a payload label to its arena ID.
func (s *Sample) ID(label string) (core.ID, error) {
	id, ok := s.ids[label]
	if !ok {
		return core.None, fmt.Errorf("%w: %q in %s", ErrUnknownLabel, label, s.Name)
	}

	return id, nil
}

// MustID is ID for tests and examples that control their own labels.
func (s *Sample) MustID(label string) core.ID {
	id, err := s.ID(label)
	if err != nil {
		panic(err)
	}

	return id
}

// Label returns the payload stored at id, or "" when id is unknown.
func (s *Sample) Label(id core.ID) string {
	l, err := s.Pedigree.Payload(id)
	if err != nil {
		return ""
	}

	return l
}

// Labels maps ids to their payload labels.
func (s *Sample) Labels(ids []core.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = s.Label(id)
	}

	return out
}

// builder accumulates a sample with label-addressed parents. The first
// unresolved parent label is kept in err; later adds still run.
type builder struct {
	s   *Sample
	err error
}

func newBuilder(name, desc string, logger *slog.Logger) *builder {
	return &builder{s: &Sample{
		Name:        name,
		Description: desc,
		Pedigree:    core.New[string](core.WithLogger(logger)),
		ids:         make(map[string]core.ID),
	}}
}

// add appends label with up to two parents given by label ("" for none).
func (b *builder) add(label, father, mother string, opts ...core.IndividualOption) *builder {
	b.s.ids[label] = b.s.Pedigree.AddIndividual(label, b.lookup(father), b.lookup(mother), opts...)
	return b
}

func (b *builder) lookup(label string) core.ID {
	if label == "" {
		return core.None
	}
	id, ok := b.s.ids[label]
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("%w: parent %q in %s", ErrUnknownLabel, label, b.s.Name)
		}
		return core.None
	}

	return id
}

type entry struct {
	desc  string
	build func(*builder)
}

var catalog = map[string]entry{
	"siblings": {
		desc: "full siblings C and D of founders A and B",
		build: func(b *builder) {
			b.add("A", "", "").add("B", "", "").
				add("C", "A", "B").add("D", "A", "B")
		},
	},
	"first-cousins": {
		desc: "G and H are first cousins through siblings D and E",
		build: func(b *builder) {
			b.add("A", "", "").add("B", "", "").
				add("D", "A", "B").add("E", "A", "B").
				add("G", "D", "").add("H", "E", "")
		},
	},
	"second-cousins": {
		desc: "K and L are second cousins; M is their child",
		build: func(b *builder) {
			b.add("A", "", "").add("B", "", "").
				add("D", "A", "B").add("E", "A", "B").
				add("H", "D", "").add("I", "E", "").
				add("K", "H", "").add("L", "I", "").
				add("M", "K", "L")
		},
	},
	"linear": {
		desc: "four generations A→C→E→G→I, plus F as G's half-sibling through E",
		build: func(b *builder) {
			b.add("A", "", "").add("C", "A", "").add("E", "C", "").
				add("G", "E", "").add("I", "G", "").add("F", "E", "")
		},
	},
	"diamond": {
		desc: "A reaches D through both B and C",
		build: func(b *builder) {
			b.add("A", "", "").
				add("B", "A", "").add("C", "A", "").
				add("D", "B", "C")
		},
	},
	"double-half-cousins": {
		desc: "X and Y are half-cousins twice over, through unrelated founders A and B",
		build: func(b *builder) {
			b.add("A", "", "").add("B", "", "").
				add("C", "A", "").add("D", "A", "").
				add("E", "B", "").add("F", "B", "").
				add("X", "C", "E").add("Y", "D", "F")
		},
	},
	"raccoons": {
		desc: "a small inbred colony: Billy is the child of full siblings",
		build: func(b *builder) {
			b.add("Coony", "", "", core.WithSex(core.Male)).
				add("Washy", "", "", core.WithSex(core.Female)).
				add("Judy", "Coony", "Washy", core.WithSex(core.Female)).
				add("Jamey", "Coony", "Washy", core.WithSex(core.Male)).
				add("Billy", "Judy", "Jamey", core.WithSex(core.Male)).
				add("Jilly", "Billy", "Coony", core.WithSex(core.Female), core.WithAlive(false))
		},
	},
}

// Names lists every sample in ascending order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Build constructs the named sample. A nil logger discards diagnostics.
func Build(name string, logger *slog.Logger) (*Sample, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := newBuilder(name, e.desc, logger)
	e.build(b)
	if b.err != nil {
		return nil, b.err
	}

	return b.s, nil
}

// MustBuild is Build for tests and examples.
func MustBuild(name string) *Sample {
	s, err := Build(name, nil)
	if err != nil {
		panic(err)
	}

	return s
}
