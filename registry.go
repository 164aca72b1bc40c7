package menunav

// Registry is the ordered set of active content groups, in activation order.
// No two groups share a panel and the count never exceeds the capacity.
type Registry struct {
	groups []*ContentGroup
	max    int
}

// NewRegistry creates an empty registry holding at most max groups.
// A non-positive max uses DefaultMaxGroups.
func NewRegistry(max int) *Registry {
	if max <= 0 {
		max = DefaultMaxGroups
	}
	return &Registry{groups: make([]*ContentGroup, 0, max), max: max}
}

// Len returns the number of active groups.
func (r *Registry) Len() int {
	return len(r.groups)
}

// Cap returns the maximum number of groups.
func (r *Registry) Cap() int {
	return r.max
}

// At returns the group at index i, or nil if out of range.
func (r *Registry) At(i int) *ContentGroup {
	if i < 0 || i >= len(r.groups) {
		return nil
	}
	return r.groups[i]
}

// Groups returns a copy of the active groups in activation order.
func (r *Registry) Groups() []*ContentGroup {
	out := make([]*ContentGroup, len(r.groups))
	copy(out, r.groups)
	return out
}

// Index returns the index of the group owned by panel, or -1.
func (r *Registry) Index(panel Panel) int {
	for i, g := range r.groups {
		if g.panel == panel {
			return i
		}
	}
	return -1
}

// Contains reports whether panel owns an active group.
func (r *Registry) Contains(panel Panel) bool {
	return r.Index(panel) != -1
}

// Add appends g. It returns false, leaving the registry unchanged, when the
// registry is full or g's panel already owns a group.
func (r *Registry) Add(g *ContentGroup) bool {
	if g == nil || len(r.groups) >= r.max || r.Contains(g.panel) {
		return false
	}
	r.groups = append(r.groups, g)
	return true
}

// Replace swaps the group owned by g's panel for g, keeping its position.
// It returns the replaced group, or nil if the panel had none.
func (r *Registry) Replace(g *ContentGroup) *ContentGroup {
	i := r.Index(g.panel)
	if i == -1 {
		return nil
	}
	old := r.groups[i]
	r.groups[i] = g
	return old
}

// Remove drops the group owned by panel and returns it, or nil.
func (r *Registry) Remove(panel Panel) *ContentGroup {
	i := r.Index(panel)
	if i == -1 {
		return nil
	}
	g := r.groups[i]
	copy(r.groups[i:], r.groups[i+1:])
	r.groups[len(r.groups)-1] = nil
	r.groups = r.groups[:len(r.groups)-1]
	return g
}

// Clear removes every group.
func (r *Registry) Clear() {
	clear(r.groups)
	r.groups = r.groups[:0]
}

// Find returns the first element whose ID equals id, scanning groups in
// activation order and each grid row-major.
func (r *Registry) Find(id string) (*ContentGroup, int, int, bool) {
	for _, g := range r.groups {
		if row, col, ok := g.Find(id); ok {
			return g, row, col, true
		}
	}
	return nil, -1, -1, false
}

// Adjacent returns the nearest group lying in direction dir from from, or
// nil. Among qualifying groups the one whose facing edge is closest wins:
// lowest Min.Y going up, highest Max.Y going down, highest Max.X going left
// and lowest Min.X going right. Ties keep the earlier group.
func (r *Registry) Adjacent(from *ContentGroup, dir Direction) *ContentGroup {
	if len(r.groups) <= 1 {
		return nil
	}
	var best *ContentGroup
	for _, g := range r.groups {
		if g == from {
			continue
		}
		switch dir {
		case Up:
			if g.IsAboveOf(from) && (best == nil || g.bounds.Min.Y < best.bounds.Min.Y) {
				best = g
			}
		case Down:
			if g.IsBelowOf(from) && (best == nil || g.bounds.Max.Y > best.bounds.Max.Y) {
				best = g
			}
		case Left:
			if g.IsLeftOf(from) && (best == nil || g.bounds.Max.X > best.bounds.Max.X) {
				best = g
			}
		case Right:
			if g.IsRightOf(from) && (best == nil || g.bounds.Min.X < best.bounds.Min.X) {
				best = g
			}
		}
	}
	return best
}
