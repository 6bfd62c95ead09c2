// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
)

// supported key types
const (
	keyTypeInteger = "integer"
	keyTypeString  = "string"
)

// basic defaults (directories and files are relative to the
// "DataDirectory" from the configuration file)
const (
	defaultKeyType = keyTypeInteger

	defaultLogDirectory = "log"
	defaultLogFile      = "avlreplay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultLogLevel     = "error"

	defaultRandomKeyRange = 1000
)

// a script name containing any of these is a pattern
const globCharacters = "*?["

// RandomType - parameters for a generated replay
type RandomType struct {
	Seed       int64 `gluamapper:"seed" json:"seed"`
	Operations int   `gluamapper:"operations" json:"operations"`
	KeyRange   int   `gluamapper:"key_range" json:"key_range"`
}

// Configuration - everything from the configuration file after
// command-line overrides
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Scripts       []string             `gluamapper:"scripts" json:"scripts"`
	Verify        bool                 `gluamapper:"verify" json:"verify"`
	Watch         bool                 `gluamapper:"watch" json:"watch"`
	Random        RandomType           `gluamapper:"random" json:"random"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults for a configuration rooted at dataDirectory
func newConfiguration(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,
		KeyType:       defaultKeyType,
		Random: RandomType{
			KeyRange: defaultRandomKeyRange,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}
}

// read the configuration file, an empty name gives the defaults
// rooted at the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {
	if "" == configurationFileName {
		dataDirectory, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		return newConfiguration(dataDirectory), nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := newConfiguration(".")

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	switch options.DataDirectory {
	case "", "~":
		return nil, errors.Wrapf(fault.ErrConfigurationFile, "data_directory: %q is not valid", options.DataDirectory)
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	return options, nil
}

// check values, make every path absolute and expand script patterns
// against fs, call after any command-line overrides have been applied
func (c *Configuration) validate(fs afero.Fs) error {

	c.KeyType = strings.ToLower(strings.TrimSpace(c.KeyType))
	switch c.KeyType {
	case keyTypeInteger, keyTypeString:
	default:
		return errors.Wrapf(fault.ErrInvalidKeyType, "key_type: %q", c.KeyType)
	}

	if c.Random.Operations < 0 {
		return errors.Wrapf(fault.ErrZeroRandomOperations, "operations: %d", c.Random.Operations)
	}
	if c.Random.Operations > 0 && c.Random.KeyRange <= 0 {
		return errors.Wrapf(fault.ErrZeroRandomKeyRange, "key_range: %d", c.Random.KeyRange)
	}

	if 0 == len(c.Scripts) && (c.Watch || 0 == c.Random.Operations) {
		return fault.ErrMissingScript
	}

	scripts := make([]string, 0, len(c.Scripts))
	for _, s := range c.Scripts {
		s = util.EnsureAbsolute(c.DataDirectory, s)

		if !strings.ContainsAny(s, globCharacters) {
			if !isRegularFile(fs, s) {
				return errors.Wrapf(fault.ErrNotFoundScript, "file: %q", s)
			}
			scripts = append(scripts, s)
			continue
		}

		matches, err := afero.Glob(fs, s)
		if nil != err {
			return errors.Wrapf(fault.ErrConfigurationFile, "pattern: %q  error: %s", s, err)
		}
		sort.Strings(matches)
		n := len(scripts)
		for _, m := range matches {
			if isRegularFile(fs, m) {
				scripts = append(scripts, m)
			}
		}
		if n == len(scripts) {
			return errors.Wrapf(fault.ErrNotFoundScript, "pattern: %q", s)
		}
	}
	c.Scripts = scripts

	if !util.IsPlainName(c.Logging.File) {
		return errors.Wrapf(fault.ErrConfigurationFile, "logging file: %q is not a plain name", c.Logging.File)
	}

	c.Logging.Directory = util.EnsureAbsolute(c.DataDirectory, c.Logging.Directory)
	if err := os.MkdirAll(c.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

func isRegularFile(fs afero.Fs, name string) bool {
	info, err := fs.Stat(name)
	return nil == err && info.Mode().IsRegular()
}
