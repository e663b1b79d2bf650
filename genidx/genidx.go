// Package genidx provides slot storage with generational handles.
//
// An Array hands out an Index for every inserted value. Erasing a slot bumps
// its generation, so any handle issued before the erase goes stale and can be
// detected as such even after the slot itself is reused.
package genidx

import "fmt"

// Index refers to one occupied slot of an Array. It stays valid until the
// slot is erased; after that every lookup with it fails.
type Index struct {
	index      uint32
	generation uint32
}

// Entry returns the slot position this Index refers to.
func (i Index) Entry() uint32 { return i.index }

// Generation returns the generation this Index was issued with.
func (i Index) Generation() uint32 { return i.generation }

func (i Index) String() string {
	return fmt.Sprintf("genidx(%d@%d)", i.index, i.generation)
}

type entry[T any] struct {
	data       *T
	generation uint32
}

// Array is a dense slot vector with a LIFO free list of vacated positions.
// Erased slots are reused by later inserts, but under a higher generation, so
// stale Indexes never alias a new occupant.
//
// An Array is not safe for concurrent use.
type Array[T any] struct {
	entries  []entry[T]
	freeList []uint32
}

// Insert stores v in a free slot, reusing the most recently vacated position
// if one exists, and returns the Index for it.
func (a *Array[T]) Insert(v T) Index {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		e := &a.entries[idx]
		e.data = &v
		return Index{index: idx, generation: e.generation}
	}

	a.entries = append(a.entries, entry[T]{data: &v})
	return Index{index: uint32(len(a.entries) - 1), generation: 0}
}

// Erase vacates the slot i refers to, invalidating i and every copy of it.
// Erasing with a stale or out of range Index does nothing.
func (a *Array[T]) Erase(i Index) {
	e := a.entryFor(i)
	if e == nil {
		return
	}
	e.data = nil
	if e.generation == ^uint32(0) {
		// A generation can never repeat for a slot, otherwise stale handles
		// would come back to life. 2^32 erasures of a single slot is beyond
		// any sane workload, so give up loudly instead of wrapping.
		panic("genidx: generation counter overflow")
	}
	e.generation++
	a.freeList = append(a.freeList, i.index)
}

// Get returns the value i refers to, or nil if i is stale or out of range.
func (a *Array[T]) Get(i Index) *T {
	if e := a.entryFor(i); e != nil {
		return e.data
	}
	return nil
}

// Clear erases every occupied slot. Capacity is retained, all outstanding
// Indexes go stale.
func (a *Array[T]) Clear() {
	for idx := range a.entries {
		if a.entries[idx].data != nil {
			a.Erase(Index{index: uint32(idx), generation: a.entries[idx].generation})
		}
	}
}

// IndexAtEntry returns the live Index for slot position i, or false if the
// slot is vacant or out of range.
func (a *Array[T]) IndexAtEntry(i uint32) (Index, bool) {
	if i >= uint32(len(a.entries)) || a.entries[i].data == nil {
		return Index{}, false
	}
	return Index{index: i, generation: a.entries[i].generation}, true
}

// EntriesSize returns the number of slots, occupied or not. It never shrinks.
func (a *Array[T]) EntriesSize() uint32 {
	return uint32(len(a.entries))
}

func (a *Array[T]) entryFor(i Index) *entry[T] {
	if i.index >= uint32(len(a.entries)) {
		return nil
	}
	e := &a.entries[i.index]
	if e.data == nil || e.generation != i.generation {
		return nil
	}
	return e
}
