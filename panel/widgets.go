// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
)

// Make adds widgets for the controls and sub-folders of f to parent.
// Each sub-folder becomes a [core.Collapser]. Widgets read their value
// from the bound fields; call Update on parent after the fields are
// changed by other means, such as recalling a preset.
func Make(parent core.Widget, f *Folder) {
	for _, c := range f.Controls {
		makeControl(parent, c)
	}
	for _, sub := range f.Folders {
		makeFolder(parent, sub)
	}
}

func makeFolder(parent core.Widget, f *Folder) *core.Collapser {
	cl := core.NewCollapser(parent)
	cl.Open = f.Open
	core.NewText(cl.Summary).SetText(f.Name).SetType(core.TextTitleSmall)
	cl.Details.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})
	Make(cl.Details, f)
	return cl
}

func makeControl(parent core.Widget, c *Control) {
	row := core.NewFrame(parent)
	row.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
		s.Grow.Set(1, 0)
	})
	label := core.NewText(row).SetText(c.Label)
	label.Styler(func(s *styles.Style) {
		s.Min.X.Ch(16)
	})

	switch c.Kind {
	case Number, Integer:
		tags := fmt.Sprintf(`min:"%g" max:"%g" step:"%g"`, c.Range.Min, c.Range.Max, c.Range.Step)
		sr := core.NewSlider(row)
		value := core.NewText(row)
		value.Updater(func() {
			value.SetText(c.String())
		})
		if c.Kind == Number {
			core.Bind(c.Float, sr, tags)
		} else {
			core.Bind(c.Int, sr, tags)
		}
		set := func() {
			errors.Log(c.Set(sr.Value))
			value.Update()
		}
		sr.OnInput(func(e events.Event) { set() })
		sr.OnChange(func(e events.Event) { set() })
	case Color:
		cb := core.Bind(c.Color, core.NewColorButton(row))
		cb.OnChange(func(e events.Event) {
			errors.Log(c.Set(cb.Color))
		})
	case Toggle:
		sw := core.Bind(c.Bool, core.NewSwitch(row)).SetType(core.SwitchCheckbox)
		sw.OnChange(func(e events.Event) {
			errors.Log(c.Set(sw.IsChecked()))
		})
	}
}
