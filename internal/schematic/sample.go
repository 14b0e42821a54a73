package schematic

import "github.com/gridwire/gridwire/backend-go/internal/geom"

// NewSampleScene builds the demonstration sheet shown when no frontend has
// placed anything yet: one module with a few ports and one routed wire.
func NewSampleScene() *Scene {
	s := NewScene()

	alu := NewModule(geom.Point{X: 200, Y: 200}, geom.Point{X: 100, Y: 100})
	alu.SetLabel("alu0")
	alu.AddPort(Port{Name: "clk", Width: 1, Type: PortInput, Offset: geom.Point{X: 0, Y: 20}})
	alu.AddPort(Port{Name: "op", Width: 4, Type: PortInput, Offset: geom.Point{X: 0, Y: 50}})
	alu.AddPort(Port{Name: "result", Width: 32, Type: PortOutput, Offset: geom.Point{X: 100, Y: 50}})
	s.Append(alu)

	w := NewWire()
	w.AddPoint(geom.Point{X: 100, Y: 250})
	w.AddPoint(geom.Point{X: 100, Y: 350})
	w.AddPoint(geom.Point{X: 300, Y: 350})
	s.Append(w)

	return s
}
