// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panel describes the control panel of the viewer as a tree of
// folders holding controls, each bound by pointer to a scene parameter,
// and renders that tree as Cogent Core widgets.
//
// A control never keeps a value of its own: what it displays is always
// read from the bound field, and [Control.Set] writes the field and then
// calls the control's change hook.
package panel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/sceneview/params"
)

// Kinds are the kinds of controls.
type Kinds int32

const (
	// Number is a slider bound to a float32 field.
	Number Kinds = iota

	// Integer is a slider bound to an int field.
	Integer

	// Color is a color picker bound to a color field.
	Color

	// Toggle is a checkbox bound to a bool field.
	Toggle
)

var kindNames = [...]string{"Number", "Integer", "Color", "Toggle"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// Control is one labeled control bound to a field.
// Exactly one of the bound pointers is set, according to Kind.
type Control struct {

	// Label is the control label, unique within its folder.
	Label string

	// Kind is the kind of control.
	Kind Kinds

	// Float is the bound field of a Number control.
	Float *float32

	// Int is the bound field of an Integer control.
	Int *int

	// Color is the bound field of a Color control.
	Color *color.RGBA

	// Bool is the bound field of a Toggle control.
	Bool *bool

	// Range is the range of Number and Integer controls.
	Range params.Range

	// OnChange is called after the bound field is set.
	OnChange func()
}

// Value returns the current value of the bound field.
func (c *Control) Value() any {
	switch c.Kind {
	case Number:
		return *c.Float
	case Integer:
		return *c.Int
	case Color:
		return *c.Color
	default:
		return *c.Bool
	}
}

// String returns the displayed text of the bound field's value,
// with as many decimals as the range step has.
func (c *Control) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(float64(*c.Float), 'f', decimals(c.Range.Step), 32)
	case Integer:
		return strconv.Itoa(*c.Int)
	case Color:
		return colors.AsHex(*c.Color)
	default:
		return strconv.FormatBool(*c.Bool)
	}
}

// decimals returns the number of decimals needed to show multiples of step.
func decimals(step float32) int {
	s := strconv.FormatFloat(float64(step), 'f', -1, 32)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Set sets the bound field to v, clamped to the range for
// numeric controls, and calls OnChange. Numeric controls accept
// any Go number; v must otherwise match the kind.
func (c *Control) Set(v any) error {
	switch c.Kind {
	case Number, Integer:
		f, ok := toFloat(v)
		if !ok {
			return fmt.Errorf("panel: %s control %q cannot be set to %T", c.Kind, c.Label, v)
		}
		f = c.Range.Clamp(f)
		if c.Kind == Number {
			*c.Float = f
		} else {
			*c.Int = int(math32.Round(f))
		}
	case Color:
		clr, ok := v.(color.Color)
		if !ok {
			return fmt.Errorf("panel: color control %q cannot be set to %T", c.Label, v)
		}
		*c.Color = colors.AsRGBA(clr)
	case Toggle:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("panel: toggle control %q cannot be set to %T", c.Label, v)
		}
		*c.Bool = b
	}
	if c.OnChange != nil {
		c.OnChange()
	}
	return nil
}

func toFloat(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	case int32:
		return float32(x), true
	case int64:
		return float32(x), true
	}
	return 0, false
}

// Folder is a named, collapsible group of controls and sub-folders.
type Folder struct {

	// Name is the folder title, unique among its siblings.
	Name string

	// Open is whether the folder starts expanded.
	Open bool

	// Folders are the sub-folders, shown after the controls.
	Folders []*Folder

	// Controls are the controls of the folder.
	Controls []*Control
}

// NewFolder returns a new closed folder with the given name.
func NewFolder(name string) *Folder {
	return &Folder{Name: name}
}

// AddFolder adds a sub-folder with the given name and returns it.
func (f *Folder) AddFolder(name string) *Folder {
	sub := NewFolder(name)
	f.Folders = append(f.Folders, sub)
	return sub
}

// Folder returns the sub-folder with the given name, or nil.
func (f *Folder) Folder(name string) *Folder {
	for _, sub := range f.Folders {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (f *Folder) add(c *Control) *Control {
	f.Controls = append(f.Controls, c)
	return c
}

// Number adds a slider for v.
func (f *Folder) Number(label string, v *float32, rg params.Range, onChange func()) *Control {
	return f.add(&Control{Label: label, Kind: Number, Float: v, Range: rg, OnChange: onChange})
}

// Integer adds an integer slider for v.
func (f *Folder) Integer(label string, v *int, rg params.Range, onChange func()) *Control {
	return f.add(&Control{Label: label, Kind: Integer, Int: v, Range: rg, OnChange: onChange})
}

// Color adds a color picker for v.
func (f *Folder) Color(label string, v *color.RGBA, onChange func()) *Control {
	return f.add(&Control{Label: label, Kind: Color, Color: v, OnChange: onChange})
}

// Toggle adds a checkbox for v.
func (f *Folder) Toggle(label string, v *bool, onChange func()) *Control {
	return f.add(&Control{Label: label, Kind: Toggle, Bool: v, OnChange: onChange})
}

// Control returns the control with the given label, or nil.
func (f *Folder) Control(label string) *Control {
	for _, c := range f.Controls {
		if c.Label == label {
			return c
		}
	}
	return nil
}

// Find returns the control at the given path of folder names and
// a control label separated by /, relative to f, or nil.
func (f *Folder) Find(path string) *Control {
	names := strings.Split(path, "/")
	cur := f
	for _, name := range names[:len(names)-1] {
		if cur = cur.Folder(name); cur == nil {
			return nil
		}
	}
	return cur.Control(names[len(names)-1])
}

// Set sets the control at the given path, as in [Folder.Find].
func (f *Folder) Set(path string, v any) error {
	c := f.Find(path)
	if c == nil {
		return fmt.Errorf("panel: no control %q", path)
	}
	return c.Set(v)
}

// Walk calls fn for every control under f, depth first,
// with its path relative to f.
func (f *Folder) Walk(fn func(path string, c *Control)) {
	f.walk("", fn)
}

func (f *Folder) walk(prefix string, fn func(path string, c *Control)) {
	for _, c := range f.Controls {
		fn(prefix+c.Label, c)
	}
	for _, sub := range f.Folders {
		sub.walk(prefix+sub.Name+"/", fn)
	}
}
