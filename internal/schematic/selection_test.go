package schematic

import (
	"testing"

	"github.com/gridwire/gridwire/backend-go/internal/geom"
)

// checkConsistent asserts the bidirectional invariant: an object's selected
// flag is set iff the object is a member of the selection.
func checkConsistent(t *testing.T, scene *Scene, sel *Selection) {
	t.Helper()
	for _, o := range scene.Objects() {
		if o.Selected() != sel.Contains(o) {
			t.Fatalf("object %s: selected flag %v but membership %v",
				o.ID(), o.Selected(), sel.Contains(o))
		}
	}
}

func TestSelectionAddRemove(t *testing.T) {
	scene := NewScene()
	m := NewModule(geom.Point{}, geom.Point{X: 20, Y: 20})
	w := NewWire()
	scene.Append(m)
	scene.Append(w)

	sel := NewSelection()
	checkConsistent(t, scene, sel)

	sel.Add(m)
	if !m.Selected() {
		t.Error("Add should set the object's flag")
	}
	if sel.Len() != 1 {
		t.Errorf("Len = %d, want 1", sel.Len())
	}
	checkConsistent(t, scene, sel)

	// Re-adding must not duplicate.
	sel.Add(m)
	if sel.Len() != 1 {
		t.Errorf("Len after duplicate Add = %d, want 1", sel.Len())
	}

	sel.Add(w)
	sel.Remove(m)
	if m.Selected() {
		t.Error("Remove should clear the object's flag")
	}
	checkConsistent(t, scene, sel)

	// Removing a non-member is a no-op.
	sel.Remove(m)
	if sel.Len() != 1 {
		t.Errorf("Len = %d, want 1", sel.Len())
	}
}

func TestSelectionClear(t *testing.T) {
	scene := NewScene()
	sel := NewSelection()
	for i := 0; i < 3; i++ {
		m := NewModule(geom.Point{X: float64(i) * 50}, geom.Point{X: 20, Y: 20})
		scene.Append(m)
		sel.Add(m)
	}

	sel.Clear()
	if sel.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", sel.Len())
	}
	checkConsistent(t, scene, sel)
}

func TestSceneRemovePreservesOrder(t *testing.T) {
	scene := NewScene()
	a := NewModule(geom.Point{}, geom.Point{X: 20, Y: 20})
	b := NewWire()
	c := NewModule(geom.Point{X: 100}, geom.Point{X: 20, Y: 20})
	scene.Append(a)
	scene.Append(b)
	scene.Append(c)

	if !scene.Remove(b) {
		t.Fatal("Remove returned false for a member")
	}
	if scene.Remove(b) {
		t.Error("Remove returned true for a non-member")
	}

	objs := scene.Objects()
	if len(objs) != 2 || objs[0] != a || objs[1] != c {
		t.Errorf("scene order after removal = %v", objs)
	}
}
