package outline

import "strconv"

// Allocator hands out DOM-unique identifiers for headings. Collisions
// are resolved lazily: the first time a slug repeats, the earlier
// holder is re-keyed under its parent's id, and the newcomer is
// qualified the same way. Short ids stay short in the common
// non-colliding case.
type Allocator struct {
	registry map[string]Hierarchy
}

func NewAllocator() *Allocator {
	return &Allocator{registry: make(map[string]Hierarchy)}
}

// Allocate computes and assigns the identifier for the innermost
// heading of h, updating the earlier colliding heading's id in place
// when a re-key is needed.
func (a *Allocator) Allocate(h Hierarchy) string {
	self := h[len(h)-1]
	base := Slugify(self.Text)

	old, taken := a.registry[base]
	if !taken {
		a.registry[base] = h
		self.SetID(base)
		return base
	}

	// Re-key the previous holder under its parent. A top-level holder
	// has no parent to qualify with and keeps its short id.
	if len(old) > 1 {
		delete(a.registry, base)
		rekeyed := old[len(old)-2].ID + "-" + base
		old[len(old)-1].SetID(rekeyed)
		a.registry[rekeyed] = old
	}

	var id string
	if len(h) > 1 {
		id = h[len(h)-2].ID + "-" + base
	} else {
		id = base
	}
	// Parent qualification alone cannot disambiguate same-text siblings
	// or colliding top-level headings; fall back to a numeric suffix.
	if _, exists := a.registry[id]; exists {
		for n := 2; ; n++ {
			candidate := id + "-" + strconv.Itoa(n)
			if _, dup := a.registry[candidate]; !dup {
				id = candidate
				break
			}
		}
	}
	a.registry[id] = h
	self.SetID(id)
	return id
}
