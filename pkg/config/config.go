// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional .renamerc configuration file, which
// provides defaults that command-line flags may override.
package config

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultFileName is the config file looked up when no --config flag is given.
const DefaultFileName = ".renamerc"

// 🔧 Config holds the user's persistent defaults for renamerc.
type Config struct {
	// Recursive overrides the default recursive traversal when set
	Recursive *bool `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional"`
	// Color overrides colorized output when set
	Color *bool `json:"color,omitempty" yaml:"color,omitempty" hcl:"color,optional"`
	// Excludes are doublestar globs matched against root-relative paths;
	// matching files are dropped during discovery
	Excludes []string `json:"excludes,omitempty" yaml:"excludes,omitempty" hcl:"excludes,optional"`

	// location is the path the config was loaded from
	location string
}

// 🏭 Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// Location returns the path the config was loaded from, or "" for defaults.
func (c *Config) Location() string {
	return c.location
}

// ✅ Validate checks the loaded configuration
func Validate(ctx context.Context, cfg *Config) error {
	for _, pattern := range cfg.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}
