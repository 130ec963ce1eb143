// Package body holds the ordered chain of segments trailing an actor's head.
package body

import (
	"iter"

	"github.com/gammazero/deque"
)

// SegmentID identifies a segment in the owning world's segment arena.
type SegmentID uint32

// Body is a deque of segment ids: front is the segment nearest the head,
// back is the tail. All operations are O(1).
//
// PopTail never removes the last remaining segment; a body of length one is
// exhausted and its owner moves that segment directly. Shed is the only way
// to empty a body and is reserved for actors that are dying.
type Body struct {
	q deque.Deque[SegmentID]
}

// New creates a body from segments ordered head first.
func New(segments ...SegmentID) *Body {
	b := &Body{}
	for _, s := range segments {
		b.q.PushBack(s)
	}
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.q.Len()
}

// Head returns the segment nearest the head.
func (b *Body) Head() (SegmentID, bool) {
	if b.q.Len() == 0 {
		return 0, false
	}
	return b.q.Front(), true
}

// Tail returns the last segment.
func (b *Body) Tail() (SegmentID, bool) {
	if b.q.Len() == 0 {
		return 0, false
	}
	return b.q.Back(), true
}

// PushHead inserts a segment at the front.
func (b *Body) PushHead(id SegmentID) {
	b.q.PushFront(id)
}

// PushTail appends a segment at the back.
func (b *Body) PushTail(id SegmentID) {
	b.q.PushBack(id)
}

// PopTail removes and returns the tail segment. It returns false and leaves
// the body untouched when one or zero segments remain.
func (b *Body) PopTail() (SegmentID, bool) {
	if b.q.Len() <= 1 {
		return 0, false
	}
	return b.q.PopBack(), true
}

// Shed removes the tail segment even if it is the last one.
func (b *Body) Shed() (SegmentID, bool) {
	if b.q.Len() == 0 {
		return 0, false
	}
	return b.q.PopBack(), true
}

// Rotate moves the tail segment to the front and returns it. With fewer than
// two segments nothing moves and false is returned.
func (b *Body) Rotate() (SegmentID, bool) {
	tail, ok := b.PopTail()
	if !ok {
		return 0, false
	}
	b.q.PushFront(tail)
	return tail, true
}

// All yields segments from head to tail.
func (b *Body) All() iter.Seq[SegmentID] {
	return func(yield func(SegmentID) bool) {
		for i := 0; i < b.q.Len(); i++ {
			if !yield(b.q.At(i)) {
				return
			}
		}
	}
}

// Clear empties the body and returns the removed segments head first.
func (b *Body) Clear() []SegmentID {
	out := make([]SegmentID, 0, b.q.Len())
	for b.q.Len() > 0 {
		out = append(out, b.q.PopFront())
	}
	return out
}
