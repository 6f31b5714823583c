package arcreplacer

// RecordAccess records that page was pinned into frame.
// It must be called once per successful pin.
//
// A resident entry is promoted to the front of the frequent list.
// A page remembered by a ghost list returns to the frequent list
// and adapts the target; a page with no history enters
// the front of the recent list.
func (r *Replacer) RecordAccess(frame FrameID, page PageID) {
	entry := Entry{Frame: frame, Page: page}
	r.lastAccess[entry] = r.clock.Now()
	if pos, ok := r.residents[frame]; ok {
		if pos.element.Value == entry {
			r.unlink(pos)
			r.push(frequentList, entry)
			r.checkInvariants()
			return
		}
		// The frame was reassigned without Evict or Remove.
		stale := r.unlink(pos)
		delete(r.lastAccess, stale)
		delete(r.dirty, stale.Page)
	}
	switch {
	case r.recentGhost.Contains(page):
		r.growTarget()
		r.recentGhost.Remove(page)
		r.push(frequentList, entry)
		r.logEntry(entry, recentList, "ghost hit")
	case r.frequentGhost.Contains(page):
		r.shrinkTarget()
		r.frequentGhost.Remove(page)
		r.push(frequentList, entry)
		r.logEntry(entry, frequentList, "ghost hit")
	default:
		r.admit(entry)
	}
	r.checkInvariants()
}

// admit inserts an entry with no history,
// trimming ghost history to make room for it.
func (r *Replacer) admit(entry Entry) {
	switch {
	case r.recent.Len()+r.recentGhost.Len() >= r.capacity:
		r.recentGhost.PopBack()
	case r.tracked() >= 2*r.capacity:
		r.frequentGhost.PopBack()
	}
	r.push(recentList, entry)
}

// growTarget favors the recent list after a recent-ghost hit.
// An increment past capacity is not applied.
func (r *Replacer) growTarget() {
	var (
		recentGhosts   = r.recentGhost.Len()
		frequentGhosts = r.frequentGhost.Len()
	)
	if recentGhosts >= frequentGhosts && r.target+1 < r.capacity {
		r.target++
		return
	}
	if recentGhosts == 0 {
		return
	}
	if grown := r.target + frequentGhosts/recentGhosts; grown <= r.capacity {
		r.target = grown
	}
}

// shrinkTarget favors the frequent list after a frequent-ghost hit.
func (r *Replacer) shrinkTarget() {
	var (
		recentGhosts   = r.recentGhost.Len()
		frequentGhosts = r.frequentGhost.Len()
	)
	if frequentGhosts >= recentGhosts && r.target-1 > 0 {
		r.target--
		return
	}
	if frequentGhosts == 0 {
		return
	}
	delta := recentGhosts / frequentGhosts
	r.target = max(r.target-delta, 0)
}
