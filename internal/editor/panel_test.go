package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gridwire/gridwire/backend-go/internal/geom"
	"github.com/gridwire/gridwire/backend-go/internal/schematic"
)

func TestPanelFieldsSingleSelection(t *testing.T) {
	m := schematic.NewModule(geom.Point{X: 0, Y: 0}, geom.Point{X: 50, Y: 50})
	m.SetLabel("cpu0")
	e := newTestEditor(m)

	if diff := cmp.Diff(map[string]string{}, e.PanelFields()); diff != "" {
		t.Errorf("empty selection fields (-want +got):\n%s", diff)
	}

	e.HandleEvent(PointerDown{Pos: geom.Point{X: 25, Y: 25}})
	want := map[string]string{FieldLabel: "cpu0"}
	if diff := cmp.Diff(want, e.PanelFields()); diff != "" {
		t.Errorf("single selection fields (-want +got):\n%s", diff)
	}
}

func TestPanelFieldsEmptyForMultiSelection(t *testing.T) {
	a := schematic.NewModule(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 100})
	b := schematic.NewModule(geom.Point{X: 50, Y: 50}, geom.Point{X: 100, Y: 100})
	e := newTestEditor(a, b)

	e.HandleEvent(PointerDown{Pos: geom.Point{X: 75, Y: 75}})
	if e.Selection().Len() != 2 {
		t.Fatalf("selection size = %d, want 2", e.Selection().Len())
	}

	if len(e.PanelFields()) != 0 {
		t.Errorf("fields for multi-selection = %v, want none", e.PanelFields())
	}
}

func TestSetFieldUpdatesEverySelected(t *testing.T) {
	a := schematic.NewModule(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 100})
	b := schematic.NewModule(geom.Point{X: 50, Y: 50}, geom.Point{X: 100, Y: 100})
	e := newTestEditor(a, b)

	e.HandleEvent(PointerDown{Pos: geom.Point{X: 75, Y: 75}})
	e.SetField(FieldLabel, "bus")

	if a.Label() != "bus" || b.Label() != "bus" {
		t.Errorf("labels = %q, %q, want both \"bus\"", a.Label(), b.Label())
	}

	// Unknown fields are ignored.
	e.SetField("color", "red")
	if a.Label() != "bus" {
		t.Errorf("label after unknown field = %q", a.Label())
	}
}
