// Package pool is a minimal in-memory buffer pool
// that drives a replacement [Policy].
// It tracks frames, pin counts and the page table;
// it holds no page data and performs no I/O.
package pool

import (
	"fmt"
	"sync"

	arcreplacer "github.com/djdv/go-arcreplacer"
)

type (
	// FrameID identifies a slot of the pool.
	FrameID = arcreplacer.FrameID
	// PageID identifies a page held by the pool.
	PageID = arcreplacer.PageID

	// Policy decides which frame to reclaim.
	// Calls are serialized by the [Pool].
	Policy interface {
		RecordAccess(FrameID, PageID)
		SetEvictable(FrameID, bool)
		Evict() (FrameID, bool)
		Remove(FrameID)
		Size() int
	}

	frame struct {
		page  PageID
		pins  int
		valid bool
	}

	// Pool maps pages to a fixed number of frames.
	// It is safe for concurrent use.
	Pool struct {
		mu           sync.Mutex
		policy       Policy
		frames       []frame
		pages        map[PageID]FrameID
		free         []FrameID
		hits, misses int
	}

	constError string
)

const (
	// ErrInvalidCapacity is returned by [New] for capacities below 1.
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrNoFreeFrame is returned by [Pool.Pin] when every frame is pinned.
	ErrNoFreeFrame = constError("no free frame")
	// ErrPageNotResident is returned when the page is not held by the pool.
	ErrPageNotResident = constError("page is not resident")
	// ErrPageNotPinned is returned by [Pool.Unpin] for a page with no pins.
	ErrPageNotPinned = constError("page is not pinned")
	// ErrPagePinned is returned by [Pool.Delete] for a pinned page.
	ErrPagePinned = constError("page is pinned")
)

func (errStr constError) Error() string { return string(errStr) }

// New creates a pool of capacity frames governed by policy.
func New(capacity int, policy Policy) (*Pool, error) {
	if capacity < 1 {
		return nil, fmt.Errorf(
			"%w: must be >=1 but %d was requested",
			ErrInvalidCapacity, capacity)
	}
	free := make([]FrameID, capacity)
	for i := range free {
		// Pop from the tail so frame 0 is handed out first.
		free[i] = FrameID(capacity - 1 - i)
	}
	return &Pool{
		policy: policy,
		frames: make([]frame, capacity),
		pages:  make(map[PageID]FrameID, capacity),
		free:   free,
	}, nil
}

// Pin makes page resident and increments its pin count.
// It reports the frame holding the page and whether
// the page was already resident.
func (p *Pool) Pin(page PageID) (FrameID, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.pages[page]; ok {
		p.hits++
		p.pin(id)
		return id, true, nil
	}
	id, err := p.allocate()
	if err != nil {
		return 0, false, err
	}
	p.misses++
	p.frames[id] = frame{page: page, valid: true}
	p.pages[page] = id
	p.pin(id)
	return id, false, nil
}

func (p *Pool) pin(id FrameID) {
	f := &p.frames[id]
	f.pins++
	p.policy.RecordAccess(id, f.page)
	if f.pins == 1 {
		p.policy.SetEvictable(id, false)
	}
}

func (p *Pool) allocate() (FrameID, error) {
	if last := len(p.free) - 1; last >= 0 {
		id := p.free[last]
		p.free = p.free[:last]
		return id, nil
	}
	id, ok := p.policy.Evict()
	if !ok {
		return 0, ErrNoFreeFrame
	}
	victim := &p.frames[id]
	if !victim.valid || victim.pins != 0 {
		return 0, fmt.Errorf(
			"policy evicted frame %d holding page %d with %d pins",
			id, victim.page, victim.pins)
	}
	delete(p.pages, victim.page)
	*victim = frame{}
	return id, nil
}

// Unpin decrements the pin count of page.
// The frame becomes evictable once no pins remain.
func (p *Pool) Unpin(page PageID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, ok := p.pages[page]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPageNotResident, page)
	}
	f := &p.frames[id]
	if f.pins == 0 {
		return fmt.Errorf("%w: %d", ErrPageNotPinned, page)
	}
	if f.pins--; f.pins == 0 {
		p.policy.SetEvictable(id, true)
	}
	return nil
}

// Delete drops an unpinned page from the pool
// and returns its frame to the free list.
func (p *Pool) Delete(page PageID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, ok := p.pages[page]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPageNotResident, page)
	}
	if p.frames[id].pins != 0 {
		return fmt.Errorf("%w: %d", ErrPagePinned, page)
	}
	p.policy.Remove(id)
	delete(p.pages, page)
	p.frames[id] = frame{}
	p.free = append(p.free, id)
	return nil
}

// Lookup returns the frame holding page, if resident.
// It does not count as an access.
func (p *Pool) Lookup(page PageID) (FrameID, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, ok := p.pages[page]
	return id, ok
}

// Resident returns the number of pages held by the pool.
func (p *Pool) Resident() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pages)
}

// Evictable returns the policy's count of evictable frames.
func (p *Pool) Evictable() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.policy.Size()
}

// Hits returns the number of pins that found the page resident.
func (p *Pool) Hits() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits
}

// Misses returns the number of pins that had to load the page.
func (p *Pool) Misses() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.misses
}
