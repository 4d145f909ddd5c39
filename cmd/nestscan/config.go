// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/loopnest/internal/config"
	"fillmore-labs.com/loopnest/internal/level"
)

// defaultConfig is read from the working directory when no --config is given.
const defaultConfig = ".nestscan.yaml"

// settings is the configuration file layout. Command line flags take precedence.
type settings struct {
	Threshold *int         `yaml:"threshold"`
	Jobs      int          `yaml:"jobs"`
	Format    level.Format `yaml:"format"`
	Color     level.Color  `yaml:"color"`
	Tests     bool         `yaml:"tests"`
	Loops     []string     `yaml:"loops"`
}

// loadSettings reads a configuration file. A missing default file is not an error.
func loadSettings(path string) (settings, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfig
	}

	var s settings

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}

		return s, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}

		return s, fmt.Errorf("config %s: %w", path, err)
	}

	return s, nil
}

// parseLoops converts loop kind names into a [config.LoopKinds] set.
func parseLoops(names []string) (config.LoopKinds, error) {
	var kinds config.LoopKinds

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "for":
			kinds.Enable(config.ForLoops)

		case "while":
			kinds.Enable(config.WhileLoops)

		case "foreach", "range":
			kinds.Enable(config.ForEachLoops)

		case "all":
			kinds.Enable(config.AllLoops)

		default:
			return kinds, fmt.Errorf("unknown loop kind %q", name)
		}
	}

	if kinds.Empty() {
		return kinds, errors.New("no loop kinds selected")
	}

	return kinds, nil
}
