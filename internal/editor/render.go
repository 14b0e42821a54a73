package editor

import (
	"github.com/gridwire/gridwire/backend-go/internal/geom"
	"github.com/gridwire/gridwire/backend-go/internal/schematic"
)

// RenderObject is a single draw descriptor for the rendering collaborator.
// Descriptors come in painter's order (first = bottom).
type RenderObject struct {
	Kind     string       `json:"kind"` // "module" or "wire"
	ID       string       `json:"id"`
	Selected bool         `json:"selected"`
	Label    string       `json:"label,omitempty"`
	Rect     *geom.Rect   `json:"rect,omitempty"`     // modules only
	Ports    []RenderPort `json:"ports,omitempty"`    // modules only
	Vertices []geom.Point `json:"vertices,omitempty"` // wires only
}

// RenderPort describes one module port at its absolute canvas position.
type RenderPort struct {
	Name  string     `json:"name"`
	Width int        `json:"width"`
	Type  string     `json:"type"`
	Pos   geom.Point `json:"pos"`
}

// Snapshot compiles the scene into render descriptors. It reads only cached
// derived geometry; call it between events, right before a repaint.
func (e *Editor) Snapshot() []RenderObject {
	objs := e.scene.Objects()
	out := make([]RenderObject, 0, len(objs))

	for _, o := range objs {
		switch o := o.(type) {
		case *schematic.Module:
			rect := o.Rect()
			ro := RenderObject{
				Kind:     schematic.KindModule.String(),
				ID:       o.ID(),
				Selected: o.Selected(),
				Label:    o.Label(),
				Rect:     &rect,
			}
			for _, p := range o.Ports() {
				ro.Ports = append(ro.Ports, RenderPort{
					Name:  p.Name,
					Width: p.Width,
					Type:  p.Type.String(),
					Pos:   o.PortPosition(p),
				})
			}
			out = append(out, ro)

		case *schematic.Wire:
			out = append(out, RenderObject{
				Kind:     schematic.KindWire.String(),
				ID:       o.ID(),
				Selected: o.Selected(),
				Vertices: o.Polyline(),
			})
		}
	}
	return out
}
