package schematic

// Scene is the ordered collection of all objects on a sheet. It exclusively
// owns them: insertion order is paint order (first painted = bottom) and the
// hit-scan order used by the editor.
type Scene struct {
	objects []Object
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Append adds an object at the top of the paint order.
func (s *Scene) Append(o Object) {
	s.objects = append(s.objects, o)
}

// Remove deletes an object, preserving the order of the rest. Returns false
// if the object is not in the scene.
func (s *Scene) Remove(o Object) bool {
	for i, obj := range s.objects {
		if obj == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Objects returns a snapshot of the scene in paint order. The slice is a
// copy so callers may iterate while the scene mutates.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len returns the object count.
func (s *Scene) Len() int { return len(s.objects) }
