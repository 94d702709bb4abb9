// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textures loads the texture maps of the box material from
// a fixed directory. Files are sniffed, decoded, downscaled and
// converted to RGBA; a map that cannot be loaded is logged and left
// empty, so the viewer always starts.
package textures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// DefaultDir is the directory, relative to the working directory
// (or the web root), that the maps are loaded from.
const DefaultDir = "text"

// MaxSize is the maximum width and height of a loaded map;
// larger images are downscaled preserving their aspect ratio.
var MaxSize = 1024

// Maps are the texture maps of the material.
type Maps int32

const (
	Color Maps = iota
	Roughness
	Normal
	Height

	// MapsN is the number of maps.
	MapsN
)

// Files are the file names of the maps within the texture directory.
var Files = [MapsN]string{"color.jpg", "roughness.jpg", "normal.png", "height.png"}

var mapNames = [MapsN]string{"Color", "Roughness", "Normal", "Height"}

func (m Maps) String() string {
	if m < 0 || m >= MapsN {
		return fmt.Sprintf("Maps(%d)", int32(m))
	}
	return mapNames[m]
}

// MapForFile returns the map loaded from the given file name.
func MapForFile(name string) (Maps, bool) {
	for m, fn := range Files {
		if fn == name {
			return Maps(m), true
		}
	}
	return -1, false
}

// Set is a loaded set of maps, indexed by [Maps]; missing maps are nil.
type Set [MapsN]*image.RGBA

// Len returns the number of maps that were loaded.
func (s *Set) Len() int {
	n := 0
	for _, img := range s {
		if img != nil {
			n++
		}
	}
	return n
}

// ErrNotImage is returned for files that are not a recognized image type.
var ErrNotImage = errors.New("textures: not an image")

// sniffLen is the header length that file type matching needs.
const sniffLen = 261

// Decode reads an image from r, checking its type from the header first.
func Decode(r io.Reader) (*image.RGBA, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	head = head[:n]
	if !filetype.IsImage(head) {
		return nil, ErrNotImage
	}
	kind, _ := filetype.Match(head)
	img, _, err := image.Decode(io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind.Extension, err)
	}
	return imagex.AsRGBA(Downscale(img, MaxSize)), nil
}

// Downscale returns img resized so that neither side exceeds size,
// or img itself if it already fits.
func Downscale(img image.Image, size int) image.Image {
	sz := img.Bounds().Size()
	if size <= 0 || (sz.X <= size && sz.Y <= size) {
		return img
	}
	w, h := size, size
	if sz.X >= sz.Y {
		h = max1(sz.Y * size / sz.X)
	} else {
		w = max1(sz.X * size / sz.Y)
	}
	return transform.Resize(img, w, h, transform.Linear)
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Load loads the named map file from fsys.
func Load(fsys fs.FS, name string) (*image.RGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// LoadSet loads all maps from fsys concurrently. Maps that fail to load
// are logged at warn level and left nil; the only error returned is
// that of a canceled context.
func LoadSet(ctx context.Context, fsys fs.FS) (Set, error) {
	var set Set
	g, ctx := errgroup.WithContext(ctx)
	for m := range MapsN {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Load(fsys, Files[m])
			if err != nil {
				slog.Warn("texture map not loaded", "map", m, "err", err)
				return nil
			}
			set[m] = img
			return nil
		})
	}
	err := g.Wait()
	return set, err
}

// Dir returns the file system rooted at dir, expanding a leading ~.
func Dir(dir string) (fs.FS, error) {
	path, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}
	return os.DirFS(path), nil
}
