package schematic

// Selection is the set of currently-selected objects, in selection order.
// It holds non-owning references into the scene, and it is the only code
// allowed to flip an object's selected flag, so membership and flag can
// never drift apart.
type Selection struct {
	items []Object
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Add selects an object. Adding an already-selected object is a no-op.
func (s *Selection) Add(o Object) {
	if s.Contains(o) {
		return
	}
	o.setSelected(true)
	s.items = append(s.items, o)
}

// Remove deselects an object. Removing a non-member is a no-op.
func (s *Selection) Remove(o Object) {
	for i, obj := range s.items {
		if obj == o {
			obj.setSelected(false)
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	for _, obj := range s.items {
		obj.setSelected(false)
	}
	s.items = s.items[:0]
}

// Contains reports membership.
func (s *Selection) Contains(o Object) bool {
	for _, obj := range s.items {
		if obj == o {
			return true
		}
	}
	return false
}

// Items returns a snapshot of the selection in selection order, safe to
// iterate while the selection mutates.
func (s *Selection) Items() []Object {
	out := make([]Object, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of selected objects.
func (s *Selection) Len() int { return len(s.items) }
