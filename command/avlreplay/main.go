// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/replay"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "key-type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "verify", HasArg: getoptions.NO_ARGUMENT, Short: 'y'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "random", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--key-type=integer|string] [--verify] [--watch] [--random=COUNT] [--seed=N] [script...]", program)
	}

	configurationFile := ""
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command-line overrides
	if len(arguments) > 0 {
		masterConfiguration.Scripts = arguments
	}
	if n := len(options["key-type"]); n > 0 {
		masterConfiguration.KeyType = options["key-type"][n-1]
	}
	if len(options["verify"]) > 0 {
		masterConfiguration.Verify = true
	}
	if len(options["watch"]) > 0 {
		masterConfiguration.Watch = true
	}
	if n := len(options["random"]); n > 0 {
		count, err := strconv.Atoi(options["random"][n-1])
		if nil != err || count <= 0 {
			exitwithstatus.Message("%s: invalid random count: %q  error: %s", program, options["random"][n-1], fault.ErrZeroRandomOperations)
		}
		masterConfiguration.Random.Operations = count
	}
	if n := len(options["seed"]); n > 0 {
		seed, err := strconv.ParseInt(options["seed"][n-1], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q  error: %s", program, options["seed"][n-1], err)
		}
		masterConfiguration.Random.Seed = seed
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "info"
	}

	fs := afero.NewOsFs()
	if err := masterConfiguration.validate(fs); nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	quiet := len(options["quiet"]) > 0

	ok := false
	switch masterConfiguration.KeyType {
	case keyTypeString:
		ok = process(program, log, fs, masterConfiguration, quiet, replay.StringKey, replay.StringKeys)
	default:
		ok = process(program, log, fs, masterConfiguration, quiet, replay.IntegerKey, replay.IntegerKeys)
	}

	if !ok {
		exitwithstatus.Exit(1)
	}
}
