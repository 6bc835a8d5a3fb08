// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration loading errors.
var (
	ErrReadConfig   = errors.New("can't read configuration")
	ErrDecodeConfig = errors.New("can't decode configuration")
	ErrInvalidRules = errors.New("invalid rules")
)

const (
	// DefaultConfigName is the base name of the configuration file searched in the working directory.
	DefaultConfigName = ".ctorsetters"

	envPrefix = "CTORSETTERS"
)

// File is the layout of a configuration file.
//
//	replace-defaults: false
//	rules:
//	  excluded-types:
//	    - example.com/app/kernel.Kernel
//	  entity-markers:
//	    - "//app:entity"
type File struct {
	// Rules extend the built-in rules.
	Rules Rules `mapstructure:"rules" yaml:"rules"`

	// ReplaceDefaults drops the built-in rules instead of extending them.
	ReplaceDefaults bool `mapstructure:"replace-defaults" yaml:"replace-defaults"`
}

// Effective returns the rules in effect for this configuration.
func (f File) Effective() Rules {
	if f.ReplaceDefaults {
		return f.Rules
	}

	return DefaultRules().Merge(f.Rules)
}

// ruleKeys are bound to CTORSETTERS_RULES_* environment variables.
var ruleKeys = [...]string{
	"excluded-types",
	"external-paths",
	"entity-markers",
	"entity-tags",
	"accessor-prefixes",
	"test-suffix",
}

// Load reads the configuration file and environment overrides and returns the effective rules.
//
// An empty path searches for [DefaultConfigName] in searchDirs, or the working directory when none are given.
// A missing file is only an error when the path is explicit.
func Load(path string, searchDirs ...string) (Rules, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")

		if len(searchDirs) == 0 {
			searchDirs = []string{"."}
		}

		for _, dir := range searchDirs {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for _, key := range ruleKeys {
		if err := v.BindEnv("rules." + key); err != nil {
			return Rules{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
	}

	if err := v.BindEnv("replace-defaults"); err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Rules{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
	}

	rules := f.Effective()
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	return rules, nil
}
