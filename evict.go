package arcreplacer

import "github.com/djdv/go-arcreplacer/internal/ring"

// SetEvictable marks whether frame may be chosen by [Replacer.Evict].
// Frames that are not resident are ignored.
func (r *Replacer) SetEvictable(frame FrameID, evictable bool) {
	if _, ok := r.residents[frame]; !ok {
		return
	}
	if evictable {
		r.evictable[frame] = struct{}{}
	} else {
		delete(r.evictable, frame)
	}
	r.checkInvariants()
}

// SetDirty flags or clears the page resident in frame as dirty.
// The flag does not influence eviction order.
func (r *Replacer) SetDirty(frame FrameID, dirty bool) {
	pos, ok := r.residents[frame]
	if !ok {
		return
	}
	page := pos.element.Value.Page
	if dirty {
		r.dirty[page] = struct{}{}
	} else {
		delete(r.dirty, page)
	}
}

// Dirty reports whether the page resident in frame is flagged dirty.
func (r *Replacer) Dirty(frame FrameID) bool {
	pos, ok := r.residents[frame]
	if !ok {
		return false
	}
	_, dirty := r.dirty[pos.element.Value.Page]
	return dirty
}

// Evict reclaims the least recently used evictable frame
// of the preferred list, falling back to the other list.
// The recent list is preferred while it holds at least
// target entries. The victim's page is remembered by
// the matching ghost list.
// It returns false if no frame is evictable.
func (r *Replacer) Evict() (FrameID, bool) {
	order := [...]listKind{recentList, frequentList}
	if r.recent.Len() < r.target {
		order[0], order[1] = order[1], order[0]
	}
	for _, kind := range order {
		if victim := r.victim(kind); victim != nil {
			entry := r.demote(kind, victim)
			r.checkInvariants()
			return entry.Frame, true
		}
	}
	return 0, false
}

// victim returns the oldest evictable element of the list.
func (r *Replacer) victim(kind listKind) *ring.Ring[Entry] {
	for element := range r.list(kind).Backward() {
		if _, ok := r.evictable[element.Value.Frame]; ok {
			return element
		}
	}
	return nil
}

func (r *Replacer) demote(kind listKind, element *ring.Ring[Entry]) Entry {
	entry := r.unlink(position{element: element, kind: kind})
	r.ghostOf(kind).PushFront(entry.Page)
	delete(r.evictable, entry.Frame)
	delete(r.lastAccess, entry)
	delete(r.dirty, entry.Page)
	r.logEntry(entry, kind, "evicted")
	return entry
}

// Remove forgets the page resident in frame entirely,
// including any ghost history of that page.
// It must only be called when the page is deleted from the pool.
// Frames that are not resident are ignored.
func (r *Replacer) Remove(frame FrameID) {
	pos, ok := r.residents[frame]
	if !ok {
		return
	}
	entry := r.unlink(pos)
	delete(r.lastAccess, entry)
	delete(r.evictable, frame)
	delete(r.dirty, entry.Page)
	r.recentGhost.Remove(entry.Page)
	r.frequentGhost.Remove(entry.Page)
	r.logEntry(entry, pos.kind, "removed")
	r.checkInvariants()
}
