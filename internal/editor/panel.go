package editor

// FieldLabel is the one editable field the properties panel exposes.
const FieldLabel = "label"

// PanelFields returns the properties-panel state: the editable fields of
// the current selection. The map is non-empty only when exactly one object
// is selected; with zero or several selected the panel shows nothing.
func (e *Editor) PanelFields() map[string]string {
	if e.selection.Len() != 1 {
		return map[string]string{}
	}
	return map[string]string{FieldLabel: e.selection.Items()[0].Label()}
}

// SetField applies a panel edit to every selected object. Unknown field
// names are ignored.
func (e *Editor) SetField(name, value string) {
	if name != FieldLabel {
		return
	}
	for _, o := range e.selection.Items() {
		o.SetLabel(value)
	}
}
