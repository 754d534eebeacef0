package trending

// ActivationTracker derives the single active card from viewport visibility.
type ActivationTracker struct {
	activeID  string
	hasActive bool
	members   map[string]struct{}
}

// NewActivationTracker creates a tracker seeded with the first id, if any
func NewActivationTracker(ids []string) *ActivationTracker {
	t := &ActivationTracker{}
	t.Reset(ids)
	return t
}

// Reset replaces the id set. The active id survives when it is still part of
// the set; otherwise the first id becomes active.
func (t *ActivationTracker) Reset(ids []string) {
	t.members = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		t.members[id] = struct{}{}
	}

	if t.hasActive && t.Contains(t.activeID) {
		return
	}

	if len(ids) == 0 {
		t.activeID = ""
		t.hasActive = false
		return
	}
	t.activeID = ids[0]
	t.hasActive = true
}

// ActiveID returns the active id and whether one exists
func (t *ActivationTracker) ActiveID() (string, bool) {
	return t.activeID, t.hasActive
}

// IsActive reports whether id is the active id
func (t *ActivationTracker) IsActive(id string) bool {
	return t.hasActive && t.activeID == id
}

// Contains reports whether id belongs to the tracked set
func (t *ActivationTracker) Contains(id string) bool {
	_, ok := t.members[id]
	return ok
}

// OnVisibilityChanged activates the first visible item in scroll order.
// An empty sequence keeps the previous active id so fast flings do not
// flicker. Items outside the tracked set are skipped.
func (t *ActivationTracker) OnVisibilityChanged(visible []VisibleItem) (prev string, changed bool) {
	for _, item := range visible {
		if !t.Contains(item.ID) {
			continue
		}
		return t.Select(item.ID)
	}
	return t.activeID, false
}

// Select makes id active. Unknown ids are ignored.
func (t *ActivationTracker) Select(id string) (prev string, changed bool) {
	prev = t.activeID
	if !t.Contains(id) || t.IsActive(id) {
		return prev, false
	}
	t.activeID = id
	t.hasActive = true
	return prev, true
}
