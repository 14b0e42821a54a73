package schematic

import (
	"testing"

	"github.com/gridwire/gridwire/backend-go/internal/geom"
)

func TestModuleSizeClamped(t *testing.T) {
	tests := []struct {
		name string
		size geom.Point
		want geom.Point
	}{
		{"zero size", geom.Point{}, geom.Point{X: MinSize, Y: MinSize}},
		{"negative size", geom.Point{X: -50, Y: -5}, geom.Point{X: MinSize, Y: MinSize}},
		{"one axis below minimum", geom.Point{X: 80, Y: 3}, geom.Point{X: 80, Y: MinSize}},
		{"above minimum", geom.Point{X: 40, Y: 30}, geom.Point{X: 40, Y: 30}},
	}

	for _, tt := range tests {
		m := NewModule(geom.Point{X: 10, Y: 10}, tt.size)
		if got := m.Size(); got != tt.want {
			t.Errorf("%s: NewModule size = %v, want %v", tt.name, got, tt.want)
		}

		m = NewModule(geom.Point{X: 10, Y: 10}, geom.Point{X: 100, Y: 100})
		m.SetSize(tt.size)
		if got := m.Size(); got != tt.want {
			t.Errorf("%s: SetSize size = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModuleHitTest(t *testing.T) {
	m := NewModule(geom.Point{X: 200, Y: 200}, geom.Point{X: 100, Y: 100})

	if !m.HitTest(geom.Point{X: 250, Y: 250}) {
		t.Error("point inside the module should hit")
	}
	if m.HitTest(geom.Point{X: 10, Y: 10}) {
		t.Error("point far outside the module should miss")
	}
}

func TestModuleRectTracksMutation(t *testing.T) {
	m := NewModule(geom.Point{X: 0, Y: 0}, geom.Point{X: 20, Y: 20})

	m.SetPosition(geom.Point{X: 50, Y: 60})
	if got := m.Rect(); got != (geom.Rect{X: 50, Y: 60, Width: 20, Height: 20}) {
		t.Errorf("rect after SetPosition = %+v", got)
	}

	m.SetSize(geom.Point{X: 30, Y: 40})
	if got := m.Rect(); got != (geom.Rect{X: 50, Y: 60, Width: 30, Height: 40}) {
		t.Errorf("rect after SetSize = %+v", got)
	}

	m.MoveBy(-10, 5)
	if got := m.Rect(); got != (geom.Rect{X: 40, Y: 65, Width: 30, Height: 40}) {
		t.Errorf("rect after MoveBy = %+v", got)
	}
}

func TestModuleMoveByZeroIsNoop(t *testing.T) {
	m := NewModule(geom.Point{X: 7, Y: 8}, geom.Point{X: 20, Y: 20})
	before := m.Rect()

	m.MoveBy(0, 0)

	if m.Rect() != before {
		t.Errorf("MoveBy(0,0) changed rect: %+v -> %+v", before, m.Rect())
	}
}

func TestModulePortsTravelWithModule(t *testing.T) {
	m := NewModule(geom.Point{X: 100, Y: 100}, geom.Point{X: 60, Y: 40})
	p := Port{Name: "clk", Width: 1, Type: PortInput, Offset: geom.Point{X: 0, Y: 10}}
	m.AddPort(p)

	if got := m.PortPosition(p); got != (geom.Point{X: 100, Y: 110}) {
		t.Errorf("port position = %v", got)
	}

	m.MoveBy(25, -5)
	if got := m.PortPosition(p); got != (geom.Point{X: 125, Y: 105}) {
		t.Errorf("port position after move = %v", got)
	}
}
