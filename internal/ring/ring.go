// Package ring is a specialized adaption of `container/ring` used
// as the ordered resident lists of the replacer.
//
// A [List] is a ring with a sentinel element; the element after
// the sentinel is the front, the element before it is the back.
package ring

import "iter"

type (
	// A Ring is an element of a [List].
	// The zero value is a detached element.
	Ring[T any] struct {
		next, prev *Ring[T]
		list       *List[T]
		Value      T
	}
	// List is an ordered sequence of [Ring] elements.
	// The zero value is an empty list ready to use.
	List[T any] struct {
		root Ring[T]
		len  int
	}
)

// New returns an initialized list.
func New[T any]() *List[T] { return new(List[T]).init() }

func (l *List[T]) init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int { return l.len }

// Front returns the first element of l or nil if l is empty.
func (l *List[T]) Front() *Ring[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of l or nil if l is empty.
func (l *List[T]) Back() *Ring[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushFront inserts value at the front of l and returns its element.
func (l *List[T]) PushFront(value T) *Ring[T] {
	l.lazyInit()
	r := &Ring[T]{Value: value}
	l.root.link(r)
	r.list = l
	l.len++
	return r
}

// Remove detaches r from l if r is an element of l.
// It reports whether r was removed.
func (l *List[T]) Remove(r *Ring[T]) bool {
	if r == nil || r.list != l {
		return false
	}
	r.prev.unlink()
	r.list = nil
	l.len--
	return true
}

// Next returns the element behind r or nil.
func (r *Ring[T]) Next() *Ring[T] {
	if p := r.next; r.list != nil && p != &r.list.root {
		return p
	}
	return nil
}

// Prev returns the element in front of r or nil.
func (r *Ring[T]) Prev() *Ring[T] {
	if p := r.prev; r.list != nil && p != &r.list.root {
		return p
	}
	return nil
}

// link inserts the detached element s after r.
func (r *Ring[T]) link(s *Ring[T]) {
	n := r.next
	// Note: Cannot use multiple assignment because
	// evaluation order of LHS is not specified.
	r.next = s
	s.prev = r
	s.next = n
	n.prev = s
}

// unlink removes the element after r and clears its links.
func (r *Ring[T]) unlink() {
	s := r.next
	r.next = s.next
	s.next.prev = r
	s.next = nil
	s.prev = nil
}

// All returns an iterator over the values of l, front to back.
// The behavior is undefined if l is modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := l.Front(); r != nil; r = r.Next() {
			if !yield(r.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of l, back to front.
// The element being yielded may be removed from l during iteration.
func (l *List[T]) Backward() iter.Seq[*Ring[T]] {
	return func(yield func(*Ring[T]) bool) {
		for r := l.Back(); r != nil; {
			prev := r.Prev()
			if !yield(r) {
				return
			}
			r = prev
		}
	}
}
