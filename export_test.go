package arcreplacer

// SeedGhosts appends pages to the ghost lists,
// each slice given front to back.
func (r *Replacer) SeedGhosts(recent, frequent []PageID) {
	for i := len(recent) - 1; i >= 0; i-- {
		r.recentGhost.PushFront(recent[i])
	}
	for i := len(frequent) - 1; i >= 0; i-- {
		r.frequentGhost.PushFront(frequent[i])
	}
}

// SetTarget overrides the adaptive target.
func (r *Replacer) SetTarget(target int) { r.target = target }
