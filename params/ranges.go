// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/core/math32"
)

// Range is the numeric range of a parameter as declared by its
// `min`, `max` and `step` struct tags.
type Range struct {
	Min, Max, Step float32
}

// DefaultRange is used for tags that are not specified,
// matching the default range of a slider.
var DefaultRange = Range{Min: 0, Max: 1, Step: 0.1}

// Clamp returns v limited to the range.
func (r Range) Clamp(v float32) float32 {
	return math32.Clamp(v, r.Min, r.Max)
}

// Contains returns whether v is within the range.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// RangeOf returns the [Range] declared on the given field of the given
// struct (or pointer to struct). Missing tags take their value from
// [DefaultRange].
func RangeOf(obj any, field string) (Range, error) {
	typ := reflect.TypeOf(obj)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return DefaultRange, fmt.Errorf("params.RangeOf: %T is not a struct", obj)
	}
	sf, ok := typ.FieldByName(field)
	if !ok {
		return DefaultRange, fmt.Errorf("params.RangeOf: %v has no field %q", typ, field)
	}
	rg := DefaultRange
	for _, t := range []struct {
		tag string
		dst *float32
	}{{"min", &rg.Min}, {"max", &rg.Max}, {"step", &rg.Step}} {
		s, has := sf.Tag.Lookup(t.tag)
		if !has {
			continue
		}
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return DefaultRange, fmt.Errorf("params.RangeOf: %v.%s tag %s: %w", typ, field, t.tag, err)
		}
		*t.dst = float32(v)
	}
	return rg, nil
}

// MustRangeOf is like [RangeOf] but panics on error.
// It is meant for the fixed field names used when building the panel.
func MustRangeOf(obj any, field string) Range {
	rg, err := RangeOf(obj, field)
	if err != nil {
		panic(err)
	}
	return rg
}
