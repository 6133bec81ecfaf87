// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the richdoc tool,
// which is read from TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/base/iox/tomlx"
	"cogentcore.org/richdoc/base/iox/yamlx"
	"cogentcore.org/richdoc/base/logx"
	"cogentcore.org/richdoc/text/formatting"
	"cogentcore.org/richdoc/text/htmltext"
	"github.com/jinzhu/copier"
)

// ErrUnknownFormat is returned for a config file whose extension
// is not .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("unknown config file format")

// Config is the configuration of the richdoc tool.
type Config struct {

	// Includes are other config files that this one builds on, relative
	// to its directory. They are read first, in order, so that this file
	// overrides their settings.
	Includes []string `toml:"includes,omitempty" yaml:"includes,omitempty"`

	// Verbose prints informational messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// VeryVerbose prints debug messages.
	VeryVerbose bool `toml:"very-verbose" yaml:"very-verbose"`

	// Quiet prints only errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`

	// Parse are the options for reading HTML.
	Parse htmltext.ParseOptions `toml:"parse" yaml:"parse"`

	// HTML are the options for writing HTML.
	HTML htmltext.Options `toml:"html" yaml:"html"`

	// Formatting are the options for formatting actions.
	Formatting formatting.Options `toml:"formatting" yaml:"formatting"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		HTML:       *htmltext.DefaultOptions(),
		Formatting: *formatting.DefaultOptions(),
	}
}

// LogLevel returns the log level selected by the verbosity settings.
func (c *Config) LogLevel() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// Open returns the default configuration updated with the settings in
// the given file and the files it includes. Settings missing from the
// files keep their default values.
func Open(filename string) (*Config, error) {
	c := Default()
	if err := c.open(filename, nil); err != nil {
		return nil, err
	}
	return c, nil
}

// open reads filename after its includes; stack holds the
// files being opened, to detect include cycles.
func (c *Config) open(filename string, stack []string) error {
	if slices.Contains(stack, filename) {
		return fmt.Errorf("config.Open: include cycle: %s", strings.Join(append(stack, filename), " -> "))
	}
	stack = append(stack, filename)
	var inc struct {
		Includes []string `toml:"includes" yaml:"includes"`
	}
	if err := read(&inc, filename); err != nil {
		return err
	}
	dir := filepath.Dir(filename)
	for _, f := range inc.Includes {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		if err := c.open(f, stack); err != nil {
			return err
		}
	}
	if err := read(c, filename); err != nil {
		return err
	}
	c.Includes = inc.Includes
	slog.Debug("config: opened", "file", filename, "includes", len(inc.Includes))
	return nil
}

// Save writes the configuration to the given file, in the format
// given by its extension.
func (c *Config) Save(filename string) error {
	switch format(filename) {
	case "toml":
		return tomlx.Save(c, filename)
	case "yaml":
		return yamlx.Save(c, filename)
	}
	return fmt.Errorf("config.Save: %s: %w", filename, ErrUnknownFormat)
}

// Merge sets the fields of c that are non-zero in o, such as the
// values of command line flags. It cannot reset a field to zero.
func (c *Config) Merge(o *Config) error {
	return copier.CopyWithOption(c, o, copier.Option{IgnoreEmpty: true, DeepCopy: true})
}

func read(v any, filename string) error {
	switch format(filename) {
	case "toml":
		return tomlx.Open(v, filename)
	case "yaml":
		return yamlx.Open(v, filename)
	}
	return fmt.Errorf("config.Open: %s: %w", filename, ErrUnknownFormat)
}

// format returns the config format of the file, from its extension.
func format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
