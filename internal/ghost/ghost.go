// Package ghost holds identity-only history lists
// for pages that were evicted from a resident list.
package ghost

import (
	"iter"
	"slices"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// List is an ordered set of keys.
// The front is the most recently pushed key, the back the oldest.
// Membership checks do not change the order.
type List[Key comparable] struct {
	keys *simplelru.LRU[Key, struct{}]
}

// New returns a list that never holds more than limit keys;
// pushing beyond limit drops the back key.
func New[Key comparable](limit int) (*List[Key], error) {
	keys, err := simplelru.NewLRU[Key, struct{}](limit, nil)
	if err != nil {
		return nil, err
	}
	return &List[Key]{keys: keys}, nil
}

// Len returns the number of keys in the list.
func (l *List[Key]) Len() int { return l.keys.Len() }

// Contains reports whether key is in the list.
func (l *List[Key]) Contains(key Key) bool { return l.keys.Contains(key) }

// PushFront adds key at the front.
// A key already present is moved to the front.
func (l *List[Key]) PushFront(key Key) { l.keys.Add(key, struct{}{}) }

// PopBack removes and returns the oldest key.
func (l *List[Key]) PopBack() (Key, bool) {
	key, _, ok := l.keys.RemoveOldest()
	return key, ok
}

// Remove drops key and reports whether it was present.
func (l *List[Key]) Remove(key Key) bool { return l.keys.Remove(key) }

// All returns an iterator over the keys, front to back.
func (l *List[Key]) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		// Keys is ordered oldest to newest.
		for _, key := range slices.Backward(l.keys.Keys()) {
			if !yield(key) {
				return
			}
		}
	}
}
