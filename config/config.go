// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct of the sceneview
// command, which is set from defaults, sceneview.toml and flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/logx"
)

// Config is the main config struct that contains all of the
// configuration options for sceneview.
type Config struct {

	// TextureDir is the directory the texture maps are loaded from,
	// relative to the working directory.
	TextureDir string `default:"text" flag:"textures"`

	// PresetFile is the file that presets are saved to and loaded from.
	// Its extension (.toml, .yaml, .yml or .json) selects the format.
	PresetFile string `default:"~/.sceneview/presets.toml" flag:"presets"`

	// Preset is the name of a preset to apply at startup.
	Preset string `flag:"preset"`

	// FPS is the frame rate of the headless animation loop.
	FPS int `default:"60" flag:"fps"`

	// NoGUI runs the viewer without a window, on the headless backend.
	NoGUI bool `flag:"nogui"`

	// Frames is the number of frames to render in NoGUI mode;
	// 0 runs until interrupted.
	Frames int `flag:"frames"`

	// Width is the initial width of the render output in NoGUI mode.
	Width int `default:"1280" flag:"width"`

	// Height is the initial height of the render output in NoGUI mode.
	Height int `default:"720" flag:"height"`

	// Watch reloads texture maps when their files change.
	Watch bool `flag:"watch"`

	// LogLevel is the minimum level of log messages:
	// debug, info, warn or error.
	LogLevel string `default:"info" flag:"log-level"`
}

// Level returns the parsed LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}

// SetupLogging sets [logx.UserLevel] from LogLevel and installs
// a text handler on stderr at that level as the default logger.
func (c *Config) SetupLogging() error {
	lvl, err := c.Level()
	logx.UserLevel = lvl
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logx.UserLevel})))
	return err
}

// Validate returns an error for settings that cannot be used.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, not %d", c.FPS)
	}
	if c.NoGUI && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("config: frames must not be negative, not %d", c.Frames)
	}
	return nil
}
