package core_test

import (
	"testing"

	"github.com/katalvlaran/lineage/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd_SequentialIDs verifies IDs start at 0 and grow by one per Add.
func TestAdd_SequentialIDs(t *testing.T) {
	p := core.New[string]()
	require.Equal(t, 0, p.Len())

	for i, label := range []string{LabelA, LabelB, LabelC} {
		id := p.Add(label, core.None, core.None)
		require.Equal(t, core.ID(i), id)
	}
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Has(2))
	assert.False(t, p.Has(3))
	assert.False(t, p.Has(core.None))
}

// TestAdd_BidirectionalLinks verifies parent and child lists mirror each other.
func TestAdd_BidirectionalLinks(t *testing.T) {
	p := buildSiblings(t)

	assert.Equal(t, []core.ID{0, 1}, p.Parents(2))
	assert.Equal(t, []core.ID{0, 1}, p.Parents(3))
	assert.Equal(t, []core.ID{2, 3}, p.Children(0))
	assert.Equal(t, []core.ID{2, 3}, p.Children(1))
	assert.Empty(t, p.Parents(0))
	assert.Empty(t, p.Children(2))

	for id := core.ID(0); int(id) < p.Len(); id++ {
		for _, parent := range p.Parents(id) {
			assert.Contains(t, p.Children(parent), id)
		}
		for _, child := range p.Children(id) {
			assert.Contains(t, p.Parents(child), id)
		}
	}
}

// TestAdd_UnknownParentStillCreates verifies a bad parent leaves the edge
// absent but the individual is created and the failure is logged.
func TestAdd_UnknownParentStillCreates(t *testing.T) {
	p, logs := newCapturingPedigree()
	a := p.Add(LabelA, core.None, core.None)

	id := p.Add(LabelB, a, 42)
	require.Equal(t, core.ID(1), id)
	assert.Equal(t, []core.ID{a}, p.Parents(id))
	assert.Contains(t, logs.String(), "parent edge rejected")
	assert.Contains(t, logs.String(), "unknown individual")
}

// TestAdd_SameParentTwice verifies the duplicate mother edge is dropped.
func TestAdd_SameParentTwice(t *testing.T) {
	p := core.New[string]()
	a := p.Add(LabelA, core.None, core.None)
	c := p.Add(LabelC, a, a)

	assert.Equal(t, []core.ID{a}, p.Parents(c))
	assert.Equal(t, []core.ID{c}, p.Children(a))
}

// TestLinkParent_NoSelfing keeps a hermaphrodite to a single parent edge per
// offspring; selfing is not representable.
func TestLinkParent_NoSelfing(t *testing.T) {
	p := core.New[string]()
	h := p.AddIndividual(LabelA, core.None, core.None, core.WithSex(core.Hermaphrodite))
	c := p.Add(LabelC, h, core.None)

	require.ErrorIs(t, p.LinkParent(c, h), core.ErrDuplicateParent)
	assert.False(t, p.AddParent(c, h))
	assert.Equal(t, []core.ID{h}, p.Parents(c))
	assert.Equal(t, []core.ID{c}, p.Children(h))
}

// TestLinkParent_Errors covers every rejection path and checks the graph is untouched.
func TestLinkParent_Errors(t *testing.T) {
	p := buildSiblings(t)

	cases := []struct {
		name   string
		id     core.ID
		parent core.ID
		want   error
	}{
		{"unknown child", 99, 0, core.ErrUnknownIndividual},
		{"unknown parent", 2, 99, core.ErrUnknownIndividual},
		{"negative parent", 2, -5, core.ErrUnknownIndividual},
		{"duplicate", 2, 0, core.ErrDuplicateParent},
		{"third parent", 2, 3, core.ErrTooManyParents},
		{"self parent", 0, 0, core.ErrCycle},
		{"descendant as parent", 0, 2, core.ErrCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := snapshotEdges(p)
			err := p.LinkParent(tc.id, tc.parent)
			require.ErrorIs(t, err, tc.want)
			assert.False(t, p.AddParent(tc.id, tc.parent))
			assert.Equal(t, before, snapshotEdges(p))
		})
	}
}

// TestLinkParent_DeepCycle rejects an edge that would close a multi-generation loop.
func TestLinkParent_DeepCycle(t *testing.T) {
	p := core.New[string]()
	a := p.Add(LabelA, core.None, core.None)
	b := p.Add(LabelB, a, core.None)
	c := p.Add(LabelC, b, core.None)
	d := p.Add(LabelD, c, core.None)

	require.ErrorIs(t, p.LinkParent(a, d), core.ErrCycle)
	assert.Empty(t, p.Parents(a))
	assert.Empty(t, p.Children(d))

	// A root with spare capacity may still adopt an unrelated parent.
	e := p.Add(LabelE, core.None, core.None)
	require.NoError(t, p.LinkParent(a, e))
	assert.Equal(t, []core.ID{e}, p.Parents(a))
}

// TestLinkParent_None verifies an absent parent is a successful no-op.
func TestLinkParent_None(t *testing.T) {
	p := buildSiblings(t)
	require.NoError(t, p.LinkParent(0, core.None))
	assert.True(t, p.AddParent(99, core.None))
	assert.Empty(t, p.Parents(0))
}

// TestIndividual_Snapshot verifies metadata defaults, options, and copy isolation.
func TestIndividual_Snapshot(t *testing.T) {
	p := core.New[string]()
	a := p.AddIndividual(LabelA, core.None, core.None, core.WithSex(core.Female))
	b := p.AddIndividual(LabelB, core.None, core.None,
		core.WithSex(core.Male), core.WithFertile(false), core.WithAlive(false))
	c := p.Add(LabelC, a, b)

	ia, err := p.Individual(a)
	require.NoError(t, err)
	assert.Equal(t, core.Female, ia.Sex)
	assert.True(t, ia.Fertile)
	assert.True(t, ia.Alive)
	assert.Nil(t, ia.Inbreeding)

	ib, err := p.Individual(b)
	require.NoError(t, err)
	assert.Equal(t, "male", ib.Sex.String())
	assert.False(t, ib.Fertile)
	assert.False(t, ib.Alive)

	ic, err := p.Individual(c)
	require.NoError(t, err)
	assert.Equal(t, LabelC, ic.Payload)
	assert.Equal(t, core.Unknown, ic.Sex)
	ic.Parents[0] = 77
	assert.Equal(t, []core.ID{a, b}, p.Parents(c))

	_, err = p.Individual(12)
	require.ErrorIs(t, err, core.ErrUnknownIndividual)
}

// TestPayload echoes payloads back and rejects unknown IDs.
func TestPayload(t *testing.T) {
	type animal struct{ name string }
	p := core.New[animal]()
	id := p.Add(animal{name: "Coony"}, core.None, core.None)

	got, err := p.Payload(id)
	require.NoError(t, err)
	assert.Equal(t, "Coony", got.name)

	_, err = p.Payload(5)
	require.ErrorIs(t, err, core.ErrUnknownIndividual)
}

// TestSetInbreeding stores an opaque value without touching edges.
func TestSetInbreeding(t *testing.T) {
	p := buildSiblings(t)
	require.NoError(t, p.SetInbreeding(2, 0.25))
	require.ErrorIs(t, p.SetInbreeding(10, 0.1), core.ErrUnknownIndividual)

	ind, err := p.Individual(2)
	require.NoError(t, err)
	require.NotNil(t, ind.Inbreeding)
	assert.InDelta(t, 0.25, *ind.Inbreeding, 1e-12)
}

// TestTailAndFounders covers the generation helpers.
func TestTailAndFounders(t *testing.T) {
	p := buildSiblings(t)

	tail, ok := p.Tail(2)
	require.True(t, ok)
	require.Len(t, tail, 2)
	assert.Equal(t, core.ID(2), tail[0].ID)
	assert.Equal(t, LabelD, tail[1].Payload)

	_, ok = p.Tail(4)
	assert.False(t, ok)
	_, ok = p.Tail(-1)
	assert.False(t, ok)

	assert.Equal(t, []core.ID{0, 1}, p.Founders())
}

// TestSexString covers every enum value.
func TestSexString(t *testing.T) {
	assert.Equal(t, "unknown", core.Unknown.String())
	assert.Equal(t, "female", core.Female.String())
	assert.Equal(t, "male", core.Male.String())
	assert.Equal(t, "hermaphrodite", core.Hermaphrodite.String())
}

// snapshotEdges captures the full edge set for before/after comparisons.
func snapshotEdges(p *core.Pedigree[string]) [][2][]core.ID {
	out := make([][2][]core.ID, p.Len())
	for i := range out {
		out[i] = [2][]core.ID{p.Parents(core.ID(i)), p.Children(core.ID(i))}
	}

	return out
}
