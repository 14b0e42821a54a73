//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/gridwire/gridwire/backend-go/internal/editor"
	"github.com/gridwire/gridwire/backend-go/internal/geom"
	"github.com/gridwire/gridwire/backend-go/internal/schematic"
)

var ed *editor.Editor

func main() {
	ed = editor.New(schematic.NewSampleScene())

	gridwireEditor := js.Global().Get("Object").New()

	// --- Input events (frontend → editor) ---
	gridwireEditor.Set("pointerDown", js.FuncOf(pointerDown))
	gridwireEditor.Set("pointerMove", js.FuncOf(pointerMove))
	gridwireEditor.Set("pointerUp", js.FuncOf(pointerUp))
	gridwireEditor.Set("doubleClick", js.FuncOf(doubleClick))
	gridwireEditor.Set("keyDown", js.FuncOf(keyDown))

	// --- Panel ---
	gridwireEditor.Set("panelFields", js.FuncOf(panelFields))
	gridwireEditor.Set("setField", js.FuncOf(setField))

	// --- Queries (frontend ← editor) ---
	gridwireEditor.Set("render", js.FuncOf(render))
	gridwireEditor.Set("mode", js.FuncOf(mode))
	gridwireEditor.Set("selectionBounds", js.FuncOf(selectionBounds))

	js.Global().Set("gridwireEditor", gridwireEditor)

	// Signal that WASM is ready
	js.Global().Set("gridwireWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func pointAt(args []js.Value) geom.Point {
	return geom.Point{X: args[0].Float(), Y: args[1].Float()}
}

// --- Input handlers ---

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}

	var mods editor.Modifiers
	if len(args) > 2 && args[2].Truthy() {
		mods |= editor.ModShift
	}
	if len(args) > 3 && args[3].Truthy() {
		mods |= editor.ModControl
	}

	ed.HandleEvent(editor.PointerDown{Pos: pointAt(args), Mods: mods})
	return nil
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}

	buttonsHeld := len(args) > 2 && args[2].Truthy()
	ed.HandleEvent(editor.PointerMove{Pos: pointAt(args), ButtonsHeld: buttonsHeld})
	return nil
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	ed.HandleEvent(editor.PointerUp{Pos: pointAt(args)})
	return nil
}

func doubleClick(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	ed.HandleEvent(editor.DoubleClick{Pos: pointAt(args)})
	return nil
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}

	key, ok := editor.ParseKey(args[0].String())
	if !ok {
		return nil
	}
	ed.HandleEvent(editor.KeyDown{Key: key})
	return nil
}

// --- Panel handlers ---

func panelFields(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(ed.PanelFields())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func setField(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	ed.SetField(args[0].String(), args[1].String())
	return nil
}

// --- Queries ---

func render(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(ed.Snapshot())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

func mode(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Mode().String())
}

// selectionBounds reports the rect covering the selected objects together
// with its center, which the frontend uses as the zoom-to-selection focus.
func selectionBounds(this js.Value, args []js.Value) interface{} {
	bounds := ed.SelectionBounds()
	payload := struct {
		Rect   geom.Rect  `json:"rect"`
		Center geom.Point `json:"center"`
		Empty  bool       `json:"empty"`
	}{Rect: bounds, Center: bounds.Center(), Empty: bounds.IsEmpty()}

	data, err := json.Marshal(payload)
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}
