// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presets saves and restores named snapshots of the scene
// parameters, so that a tuned scene can be recalled later. Stores are
// files in TOML, YAML or JSON format, chosen by file extension.
package presets

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/sceneview/params"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
)

// Version is the store format version written by this package.
// Stores with a different major version are rejected.
const Version = "1.0.0"

// DefaultName is the name of the preset that [Store.Reset] restores.
const DefaultName = "Default"

// ErrNotFound is returned for a preset name that is not in the store.
var ErrNotFound = errors.New("presets: no such preset")

// Store is a set of named scene presets.
type Store struct {

	// Version is the format version the store was written with.
	Version string `toml:"version" yaml:"version" json:"version"`

	// Active is the name of the most recently remembered or recalled preset.
	Active string `toml:"active" yaml:"active" json:"active"`

	// Presets are the saved scenes by name.
	Presets map[string]params.Scene `toml:"presets" yaml:"presets" json:"presets"`
}

// New returns a store holding only the [DefaultName] preset.
func New() *Store {
	st := &Store{Version: Version, Presets: map[string]params.Scene{}}
	st.Presets[DefaultName] = *params.NewScene()
	st.Active = DefaultName
	return st
}

// Remember saves a copy of sc under name and makes it active.
func (st *Store) Remember(name string, sc *params.Scene) error {
	if name == "" {
		return errors.New("presets: empty preset name")
	}
	var cp params.Scene
	if err := deepCopy(&cp, sc); err != nil {
		return err
	}
	if st.Presets == nil {
		st.Presets = map[string]params.Scene{}
	}
	st.Presets[name] = cp
	st.Active = name
	return nil
}

// Recall copies the named preset into sc and makes it active.
// A preset whose lights do not match those of sc is rejected
// and leaves sc unchanged.
func (st *Store) Recall(name string, sc *params.Scene) error {
	ps, ok := st.Presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	var cp params.Scene
	if err := deepCopy(&cp, &ps); err != nil {
		return err
	}
	if err := sc.SetFrom(&cp); err != nil {
		return fmt.Errorf("presets: recalling %q: %w", name, err)
	}
	st.Active = name
	return nil
}

// Reset sets sc to the default scene, recording the defaults as [DefaultName].
func (st *Store) Reset(sc *params.Scene) error {
	if err := sc.SetFrom(params.NewScene()); err != nil {
		return err
	}
	return st.Remember(DefaultName, sc)
}

// Delete removes the named preset.
func (st *Store) Delete(name string) {
	delete(st.Presets, name)
	if st.Active == name {
		st.Active = ""
	}
}

// Names returns the sorted preset names.
func (st *Store) Names() []string {
	return slices.Sorted(maps.Keys(st.Presets))
}

// CheckVersion returns an error unless version has the same
// major version as [Version].
func CheckVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("presets: invalid version %q: %w", version, err)
	}
	cur := semver.MustParse(Version)
	if v.Major() != cur.Major() {
		return fmt.Errorf("presets: version %s is not compatible with %s", v, cur)
	}
	return nil
}

func deepCopy(to, from *params.Scene) error {
	return copier.CopyWithOption(to, from, copier.Option{CaseSensitive: true, DeepCopy: true})
}
