// File: methods.go
// Role: Read-only queries over the arena.
//
// Determinism:
//   - Parents/Children preserve insertion order.
//   - Founders and Tail return IDs ascending.
//
// Concurrency:
//   - Every method takes the read lock and returns copies.
package core

import "fmt"

// Len reports the number of individuals in the arena.
func (p *Pedigree[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.records)
}

// Has reports whether id addresses an individual.
func (p *Pedigree[T]) Has(id ID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.hasLocked(id)
}

func (p *Pedigree[T]) hasLocked(id ID) bool {
	return id >= 0 && int(id) < len(p.records)
}

// Parents returns a copy of id's parent list, or nil for an unknown id.
func (p *Pedigree[T]) Parents(id ID) []ID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.hasLocked(id) {
		return nil
	}

	return cloneIDs(p.records[id].parents)
}

// Children returns a copy of id's child list, or nil for an unknown id.
func (p *Pedigree[T]) Children(id ID) []ID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.hasLocked(id) {
		return nil
	}

	return cloneIDs(p.records[id].children)
}

// Payload echoes back the caller's payload for id.
func (p *Pedigree[T]) Payload(id ID) (T, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.hasLocked(id) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrUnknownIndividual, id)
	}

	return p.records[id].payload, nil
}

// Individual returns a snapshot of the record at id.
func (p *Pedigree[T]) Individual(id ID) (Individual[T], error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.hasLocked(id) {
		return Individual[T]{}, fmt.Errorf("%w: %d", ErrUnknownIndividual, id)
	}

	return p.snapshotLocked(id), nil
}

// Tail returns snapshots of the last n individuals in ID order.
// It returns ok=false when n is not smaller than Len, mirroring a request for
// "the newest generation" that would cover the whole arena.
func (p *Pedigree[T]) Tail(n int) ([]Individual[T], bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if n < 0 || n >= len(p.records) {
		return nil, false
	}
	out := make([]Individual[T], 0, n)
	for i := len(p.records) - n; i < len(p.records); i++ {
		out = append(out, p.snapshotLocked(ID(i)))
	}

	return out, true
}

// Founders returns the IDs of individuals with no recorded parents.
func (p *Pedigree[T]) Founders() []ID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []ID
	for i := range p.records {
		if len(p.records[i].parents) == 0 {
			out = append(out, ID(i))
		}
	}

	return out
}

func (p *Pedigree[T]) snapshotLocked(id ID) Individual[T] {
	r := &p.records[id]
	var inbreeding *float64
	if r.inbreeding != nil {
		f := *r.inbreeding
		inbreeding = &f
	}

	return Individual[T]{
		ID:         id,
		Payload:    r.payload,
		Parents:    cloneIDs(r.parents),
		Children:   cloneIDs(r.children),
		Sex:        r.sex,
		Fertile:    r.fertile,
		Alive:      r.alive,
		Inbreeding: inbreeding,
	}
}

// cloneIDs returns an independent copy of ids (nil stays nil).
func cloneIDs(ids []ID) []ID {
	if ids == nil {
		return nil
	}
	out := make([]ID, len(ids))
	copy(out, ids)

	return out
}
