// Copyright (C) 2024 The NAQMap Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package pqueue

// BoundedHeap retains at most maxSize elements, ranked by
// Compare: a Push that would exceed maxSize evicts the
// lowest-priority element (or rejects the pushed one if it is
// that element). Evicted elements are not restored when
// retained ones are later popped or erased. It is
// built from two mirrored Heaps so that the current global
// minimum among retained elements can be found and evicted in
// O(log n) when a higher-priority element arrives.
type BoundedHeap[E comparable, P any] struct {
	maxSize int
	compare func(a, b P) bool
	maxHeap *Heap[E, P] // root = highest priority, the retained set
	minHeap *Heap[E, P] // root = lowest priority, the eviction candidate
}

// NewBounded constructs a BoundedHeap that retains at most
// maxSize elements, ranked by compare (compare(a, b) reports
// whether a outranks b, i.e. a has higher priority).
// maxSize == 0 is legal and accepts no element.
func NewBounded[E comparable, P any](maxSize int, compare func(a, b P) bool) *BoundedHeap[E, P] {
	return &BoundedHeap[E, P]{
		maxSize: maxSize,
		compare: compare,
		maxHeap: New[E, P](compare),
		minHeap: New[E, P](func(a, b P) bool { return compare(b, a) }),
	}
}

// Size returns the number of retained elements.
func (b *BoundedHeap[E, P]) Size() int { return b.maxHeap.Size() }

// Empty reports whether no elements are retained.
func (b *BoundedHeap[E, P]) Empty() bool { return b.maxHeap.Empty() }

// Top returns the highest-priority retained element.
func (b *BoundedHeap[E, P]) Top() (E, P, bool) { return b.maxHeap.Top() }

// Pop removes and returns the highest-priority retained element.
func (b *BoundedHeap[E, P]) Pop() (e E, p P, ok bool) {
	e, p, ok = b.maxHeap.Pop()
	if ok {
		b.minHeap.Erase(e)
	}
	return e, p, ok
}

// Push inserts v with priority p and reports whether v was
// retained. v may be rejected outright (maxSize == 0, or v is
// the new global minimum once the retained set is already
// full) without ever entering the retained set.
func (b *BoundedHeap[E, P]) Push(v E, p P) bool {
	if b.maxSize <= 0 {
		return false
	}
	b.minHeap.Push(v, p)
	if b.minHeap.Size() > b.maxSize {
		least, _, _ := b.minHeap.Top()
		if least != v {
			b.maxHeap.Erase(least)
			b.maxHeap.Push(v, p)
			b.minHeap.Pop()
			return true
		}
		b.minHeap.Pop()
		return false
	}
	b.maxHeap.Push(v, p)
	return true
}

// Update rebinds the priority of an already-retained element
// in both internal heaps and reports whether v was present.
func (b *BoundedHeap[E, P]) Update(v E, p P) bool {
	inMax := b.maxHeap.Update(v, p)
	inMin := b.minHeap.Update(v, p)
	return inMax || inMin
}

// Erase removes v from both internal heaps and reports
// whether v was present.
func (b *BoundedHeap[E, P]) Erase(v E) bool {
	inMax := b.maxHeap.Erase(v)
	inMin := b.minHeap.Erase(v)
	return inMax || inMin
}
