// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
)

// format is a file format for stores.
type format struct {
	open func(v any, filename string) error
	save func(v any, filename string) error
}

var formats = map[string]format{
	".toml": {tomlx.Open, tomlx.Save},
	".yaml": {yamlx.Open, yamlx.Save},
	".yml":  {yamlx.Open, yamlx.Save},
	".json": {jsonx.Open, jsonx.SaveIndent},
}

func formatFor(filename string) (format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := formats[ext]
	if !ok {
		return format{}, fmt.Errorf("presets: unsupported file type %q", ext)
	}
	return f, nil
}

// Open reads the store in the given file, which may start with ~.
func Open(filename string) (*Store, error) {
	path, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	st := &Store{}
	if err := f.open(st, path); err != nil {
		return nil, fmt.Errorf("presets: reading %s: %w", filename, err)
	}
	if err := CheckVersion(st.Version); err != nil {
		return nil, err
	}
	return st, nil
}

// OpenOrNew reads the store in the given file, or returns [New]
// if the file does not exist.
func OpenOrNew(filename string) (*Store, error) {
	st, err := Open(filename)
	if os.IsNotExist(err) {
		return New(), nil
	}
	return st, err
}

// Save writes the store to the given file, which may start with ~,
// creating its directory if needed.
func (st *Store) Save(filename string) error {
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	f, err := formatFor(path)
	if err != nil {
		return err
	}
	st.Version = Version
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := f.save(st, path); err != nil {
		return fmt.Errorf("presets: writing %s: %w", filename, err)
	}
	return nil
}
