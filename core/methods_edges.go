// File: methods_edges.go
// Role: Individual creation and parent-edge installation.
//
// Determinism:
//   - IDs are allocated as len(arena) at the time of the call.
//   - Parent order is insertion order (father first, then mother for Add).
//
// Concurrency:
//   - All mutation happens under the write lock; the cycle gate runs inside
//     the same critical section so check and install are atomic.
package core

import (
	"fmt"
	"log/slog"
)

// Add appends a new individual and tries to link father and mother to it.
//
// Implementation:
//   - Stage 1: Allocate id = Len() and append a fresh record.
//   - Stage 2: Install the father edge, then the mother edge, independently.
//   - Stage 3: Log every rejected edge at warn level; never retry.
//
// The returned ID is valid even when one or both edges were rejected; the
// rejected edge is simply absent. Pass None for an unknown parent.
//
// Complexity: O(1) per edge plus the cycle gate (O(1) for a fresh id).
func (p *Pedigree[T]) Add(payload T, father, mother ID) ID {
	return p.AddIndividual(payload, father, mother)
}

// AddIndividual is Add with descriptive metadata options.
func (p *Pedigree[T]) AddIndividual(payload T, father, mother ID, opts ...IndividualOption) ID {
	cfg := individualConfig{fertile: true, alive: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id := ID(len(p.records))
	p.records = append(p.records, record[T]{
		payload: payload,
		sex:     cfg.sex,
		fertile: cfg.fertile,
		alive:   cfg.alive,
	})

	for _, parent := range [...]ID{father, mother} {
		if err := p.linkLocked(id, parent); err != nil {
			p.log.Warn("parent edge rejected",
				slog.Int("id", int(id)),
				slog.Int("parent", int(parent)),
				slog.Any("err", err))
		}
	}

	return id
}

// AddParent installs the edge parent→id and reports whether it succeeded.
// A None parent is a successful no-op. Use LinkParent to learn why an edge
// was rejected.
func (p *Pedigree[T]) AddParent(id, parent ID) bool {
	return p.LinkParent(id, parent) == nil
}

// LinkParent installs the edge parent→id.
//
// Implementation:
//   - Stage 1: Return nil for a None parent.
//   - Stage 2: Validate both IDs (ErrUnknownIndividual).
//   - Stage 3: Reject duplicates and a third parent.
//   - Stage 4: Reject the edge if id reaches parent over child edges (ErrCycle).
//   - Stage 5: Append id to parent.children and parent to id.parents.
//
// Errors:
//   - ErrUnknownIndividual, ErrDuplicateParent, ErrTooManyParents, ErrCycle.
//
// The pedigree is left unchanged on every error.
//
// Self-fertilization is not modelled: an individual appears at most once in a
// parent list, even a Hermaphrodite, so a selfed offspring gets one parent
// edge and relationship treats it as having a single known parent.
func (p *Pedigree[T]) LinkParent(id, parent ID) error {
	if parent == None {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.linkLocked(id, parent)
}

// linkLocked performs LinkParent; the caller holds the write lock.
func (p *Pedigree[T]) linkLocked(id, parent ID) error {
	if parent == None {
		return nil
	}
	if !p.hasLocked(id) {
		return fmt.Errorf("%w: child %d", ErrUnknownIndividual, id)
	}
	if !p.hasLocked(parent) {
		return fmt.Errorf("%w: parent %d", ErrUnknownIndividual, parent)
	}

	child := &p.records[id]
	for _, existing := range child.parents {
		if existing == parent {
			return fmt.Errorf("%w: %d→%d", ErrDuplicateParent, parent, id)
		}
	}
	if len(child.parents) >= MaxParents {
		return fmt.Errorf("%w: %d", ErrTooManyParents, id)
	}
	if p.reachesLocked(id, parent) {
		return fmt.Errorf("%w: %d is an ancestor of %d", ErrCycle, id, parent)
	}

	p.records[parent].children = append(p.records[parent].children, id)
	child.parents = append(child.parents, parent)

	return nil
}

// reachesLocked reports whether target is reachable from start by following
// child edges, counting start itself. Uses an explicit stack so deep
// pedigrees cannot exhaust the goroutine stack.
func (p *Pedigree[T]) reachesLocked(start, target ID) bool {
	if start == target {
		return true
	}
	seen := make(map[ID]struct{})
	stack := []ID{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range p.records[cur].children {
			if c == target {
				return true
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			stack = append(stack, c)
		}
	}

	return false
}

// SetInbreeding caches a coefficient of inbreeding on id. The value is
// opaque to this package.
func (p *Pedigree[T]) SetInbreeding(id ID, f float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hasLocked(id) {
		return fmt.Errorf("%w: %d", ErrUnknownIndividual, id)
	}
	p.records[id].inbreeding = &f

	return nil
}
