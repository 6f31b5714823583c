package arcreplacer

import (
	"iter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/djdv/go-arcreplacer/internal/ghost"
	"github.com/djdv/go-arcreplacer/internal/ring"
)

type (
	// FrameID identifies a physical slot of the buffer pool.
	FrameID uint32
	// PageID identifies a logical page.
	PageID uint32
	// Entry pairs a frame with the page it currently holds.
	Entry struct {
		Frame FrameID
		Page  PageID
	}

	listKind uint8
	position struct {
		element *ring.Ring[Entry]
		kind    listKind
	}

	// Replacer selects frames to reclaim using the
	// Adaptive Replacement Cache algorithm.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Replacer struct {
		recent, frequent *ring.List[Entry]
		recentGhost,
		frequentGhost *ghost.List[PageID]
		residents  map[FrameID]position
		evictable  map[FrameID]struct{}
		lastAccess map[Entry]time.Time
		dirty      map[PageID]struct{}
		clock      Clock
		log        *logrus.Logger
		capacity, target int
	}

	// Stats is a snapshot of the replacer's list sizes and target.
	Stats struct {
		Recent, Frequent,
		RecentGhost, FrequentGhost,
		Evictable,
		Target, Capacity int
	}
)

const (
	recentList listKind = iota
	frequentList
)

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

func (kind listKind) String() string {
	if kind == recentList {
		return "recent"
	}
	return "frequent"
}

// New creates a [Replacer] for a pool of capacity frames.
func New(capacity int, options ...Option) (*Replacer, error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	// History never exceeds twice the capacity.
	historyLimit := capacity * 2
	recentGhost, err := ghost.New[PageID](historyLimit)
	if err != nil {
		return nil, err
	}
	frequentGhost, err := ghost.New[PageID](historyLimit)
	if err != nil {
		return nil, err
	}
	r := &Replacer{
		recent:        ring.New[Entry](),
		frequent:      ring.New[Entry](),
		recentGhost:   recentGhost,
		frequentGhost: frequentGhost,
		residents:     make(map[FrameID]position, capacity),
		evictable:     make(map[FrameID]struct{}, capacity),
		lastAccess:    make(map[Entry]time.Time, capacity),
		dirty:         make(map[PageID]struct{}),
		clock:         wallClock{},
		capacity:      capacity,
	}
	for _, apply := range options {
		apply(r)
	}
	return r, nil
}

// Size returns the number of frames currently marked evictable.
func (r *Replacer) Size() int { return len(r.evictable) }

// Capacity returns the number of frames the replacer was sized for.
func (r *Replacer) Capacity() int { return r.capacity }

// Target returns the current target length of the recent list.
func (r *Replacer) Target() int { return r.target }

// Stats returns the current list sizes.
func (r *Replacer) Stats() Stats {
	return Stats{
		Recent:        r.recent.Len(),
		Frequent:      r.frequent.Len(),
		RecentGhost:   r.recentGhost.Len(),
		FrequentGhost: r.frequentGhost.Len(),
		Evictable:     len(r.evictable),
		Target:        r.target,
		Capacity:      r.capacity,
	}
}

// Recent returns an iterator over the entries seen once recently,
// most recent first.
func (r *Replacer) Recent() iter.Seq[Entry] { return r.recent.All() }

// Frequent returns an iterator over the entries seen more than once,
// most recent first.
func (r *Replacer) Frequent() iter.Seq[Entry] { return r.frequent.All() }

// RecentGhosts returns an iterator over pages evicted
// from the recent list, most recent first.
func (r *Replacer) RecentGhosts() iter.Seq[PageID] { return r.recentGhost.All() }

// FrequentGhosts returns an iterator over pages evicted
// from the frequent list, most recent first.
func (r *Replacer) FrequentGhosts() iter.Seq[PageID] { return r.frequentGhost.All() }

// LastAccess returns the time of the latest access
// recorded for the entry resident in frame.
func (r *Replacer) LastAccess(frame FrameID) (time.Time, bool) {
	pos, ok := r.residents[frame]
	if !ok {
		return time.Time{}, false
	}
	stamp, ok := r.lastAccess[pos.element.Value]
	return stamp, ok
}

func (r *Replacer) list(kind listKind) *ring.List[Entry] {
	if kind == recentList {
		return r.recent
	}
	return r.frequent
}

func (r *Replacer) ghostOf(kind listKind) *ghost.List[PageID] {
	if kind == recentList {
		return r.recentGhost
	}
	return r.frequentGhost
}

func (r *Replacer) push(kind listKind, entry Entry) {
	r.residents[entry.Frame] = position{
		element: r.list(kind).PushFront(entry),
		kind:    kind,
	}
}

// unlink drops the resident entry at pos from its list and index.
func (r *Replacer) unlink(pos position) Entry {
	entry := pos.element.Value
	r.list(pos.kind).Remove(pos.element)
	delete(r.residents, entry.Frame)
	return entry
}

func (r *Replacer) tracked() int {
	return r.recent.Len() + r.frequent.Len() +
		r.recentGhost.Len() + r.frequentGhost.Len()
}

func (r *Replacer) debugEnabled() bool {
	return r.log != nil && r.log.IsLevelEnabled(logrus.DebugLevel)
}

func (r *Replacer) logEntry(entry Entry, kind listKind, message string) {
	if !r.debugEnabled() {
		return
	}
	r.log.WithFields(logrus.Fields{
		"frame":  entry.Frame,
		"page":   entry.Page,
		"list":   kind.String(),
		"target": r.target,
	}).Debug(message)
}

func (r *Replacer) checkInvariants() {
	if !debugging {
		return
	}
	var (
		recent        = r.recent.Len()
		recentGhost   = r.recentGhost.Len()
		historyLength = r.tracked()
	)
	assert(recent+recentGhost <= r.capacity,
		"recent side exceeds capacity")
	assert(historyLength <= 2*r.capacity,
		"history exceeds twice the capacity")
	assert(r.target >= 0 && r.target <= r.capacity,
		"target out of range")
	assert(len(r.residents) == recent+r.frequent.Len(),
		"resident index out of sync with lists")
	for frame := range r.evictable {
		_, resident := r.residents[frame]
		assert(resident, "evictable frame is not resident")
	}
	for frame, pos := range r.residents {
		assert(pos.element.Value.Frame == frame,
			"resident index points at the wrong entry")
	}
	for page := range r.recentGhost.All() {
		assert(!r.frequentGhost.Contains(page),
			"page in both ghost lists")
	}
}
