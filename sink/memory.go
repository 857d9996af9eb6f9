// SPDX-License-Identifier: MIT

package sink

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Sink. The zero value is not usable; use NewMemory.
type Memory struct {
	mu      sync.Mutex
	order   []Key
	results map[Key]Result
	closed  bool
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{results: make(map[Key]Result)}
}

// Save stores a copy of r.
func (m *Memory) Save(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate("Memory.Save", r); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	k := r.Key()
	if _, ok := m.results[k]; ok {
		return fmt.Errorf("Memory.Save %s: %w", k, ErrAlreadyPersisted)
	}
	r.Values = r.Values.Clone()
	m.results[k] = r
	m.order = append(m.order, k)

	return nil
}

// Get returns a copy of the result saved under (probe, caseLabel).
func (m *Memory) Get(probe, caseLabel string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[Key{Probe: probe, Case: caseLabel}]
	if !ok {
		return Result{}, fmt.Errorf("Memory.Get %s(%s): %w", probe, caseLabel, ErrNotFound)
	}
	r.Values = r.Values.Clone()

	return r, nil
}

// Results returns copies of every saved result in insertion order.
func (m *Memory) Results() []Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Result, len(m.order))
	for k, key := range m.order {
		r := m.results[key]
		r.Values = r.Values.Clone()
		out[k] = r
	}

	return out
}

// Len reports the number of saved results.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.order)
}

// Close marks the sink closed; results remain readable.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true

	return nil
}
