// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package idpool provides allocation of unique integer identifiers from a
// bounded range. It backs the per-partition device number pools and the
// world-wide port name suffix pools of the faked console.
package idpool

import (
	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

const (
	// ErrExhausted is returned by Alloc once every value in the declared
	// range is in use.
	ErrExhausted = errors.ConstError("id pool exhausted")

	// ErrNotAllocated is returned by Free for a value that is not
	// currently allocated.
	ErrNotAllocated = errors.ConstError("id not allocated")
)

// chunkSize bounds how many free values are materialized at a time, so that
// a pool over a huge range does not hold the whole range in memory.
const chunkSize = 10

// Pool hands out unique integers from the inclusive range [lowest, highest].
// Allocated values stay unique until returned with Free or FreeIfAllocated.
// No ordering is guaranteed for the values returned by Alloc.
//
// Pool is not safe for concurrent use; callers serialize access, which
// matches the single-writer discipline of the store owning the pool.
type Pool struct {
	lowest  int
	highest int

	// next is the lowest range value that has not been materialized into
	// the free set yet.
	next int

	used set.Ints
	free set.Ints
}

// New returns a pool over the inclusive range [lowest, highest].
func New(lowest, highest int) (*Pool, error) {
	if highest < lowest {
		return nil, errors.NotValidf("range [%d, %d]", lowest, highest)
	}
	return &Pool{
		lowest:  lowest,
		highest: highest,
		next:    lowest,
		used:    set.NewInts(),
		free:    set.NewInts(),
	}, nil
}

// expand materializes the next chunk of the range into the free set.
func (p *Pool) expand() {
	for i := 0; i < chunkSize && p.next <= p.highest; i++ {
		p.free.Add(p.next)
		p.next++
	}
}

// Alloc removes one value from the free set and returns it, expanding the
// free set from the range first if necessary. It fails with ErrExhausted if
// the whole range is allocated.
func (p *Pool) Alloc() (int, error) {
	if p.free.IsEmpty() {
		p.expand()
	}
	if p.free.IsEmpty() {
		return 0, errors.Annotatef(ErrExhausted, "range [%d, %d]", p.lowest, p.highest)
	}
	id := p.free.Values()[0]
	p.free.Remove(id)
	p.used.Add(id)
	return id, nil
}

// Free returns an allocated value to the pool. It fails with ErrNotAllocated
// if the value is not currently allocated.
func (p *Pool) Free(id int) error {
	if !p.used.Contains(id) {
		return errors.Annotatef(ErrNotAllocated, "id %d", id)
	}
	p.used.Remove(id)
	p.free.Add(id)
	return nil
}

// FreeIfAllocated is like Free but is a no-op for values that are not
// currently allocated, so it can be used by remove paths that cannot tell
// whether an identifier was auto-assigned from the pool.
func (p *Pool) FreeIfAllocated(id int) {
	if p.used.Contains(id) {
		p.used.Remove(id)
		p.free.Add(id)
	}
}
