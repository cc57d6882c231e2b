// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"strings"
	"time"
)

// Registry holds the elections of one process in creation order.
// It is not safe for concurrent use; callers serialise access.
type Registry struct {
	elections map[string]*Election
	order     []string
	now       func() time.Time
}

func NewRegistry() *Registry {
	return NewRegistryWithClock(time.Now)
}

// NewRegistryWithClock is NewRegistry with an injectable clock for tests
func NewRegistryWithClock(now func() time.Time) *Registry {
	return &Registry{
		elections: make(map[string]*Election),
		now:       now,
	}
}

// CreateElection registers a new election in setup with candidateCount empty slots
func (r *Registry) CreateElection(name string, candidateCount int) (*Election, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, exists := r.elections[name]; exists {
		return nil, &DuplicateNameError{Name: name}
	}
	if candidateCount < MinCandidates || candidateCount > MaxCandidates {
		return nil, &InvalidCandidateCountError{Count: candidateCount}
	}

	e := newElection(name, candidateCount, r.now)
	r.elections[name] = e
	r.order = append(r.order, name)
	return e, nil
}

func (r *Registry) Get(name string) (*Election, error) {
	e, ok := r.elections[name]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// List returns all elections in creation order
func (r *Registry) List() []*Election {
	out := make([]*Election, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.elections[name])
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

// Close discards an election in any state. The name may be reused.
func (r *Registry) Close(name string) error {
	if _, ok := r.elections[name]; !ok {
		return ErrNotFound
	}

	delete(r.elections, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
