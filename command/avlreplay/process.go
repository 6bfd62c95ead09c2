// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/replay"
)

// parsed scripts are reused while the file is unmodified
const (
	scriptCacheExpiry  = 10 * time.Minute
	scriptCacheCleanup = time.Minute
)

// session - replays the configured scripts and random operations
// against a single runner
type session[K cmp.Ordered] struct {
	log      *logger.L
	fs       afero.Fs
	conf     *Configuration
	runner   *replay.Runner[K]
	scripts  *cache.Cache
	parseKey func(string) (K, error)
	makeKey  func(int) K
}

func newSession[K cmp.Ordered](log *logger.L, fs afero.Fs, conf *Configuration, parseKey func(string) (K, error), makeKey func(int) K) *session[K] {
	reporter := replay.NewLogReporter(logger.New("replay"))
	return &session[K]{
		log:      log,
		fs:       fs,
		conf:     conf,
		runner:   replay.NewRunner[K](logger.New("runner"), reporter, conf.Verify),
		scripts:  cache.New(scriptCacheExpiry, scriptCacheCleanup),
		parseKey: parseKey,
		makeKey:  makeKey,
	}
}

// runAll - start from an empty tree and replay everything in order,
// returns the number of failed replays
//
// an error means a script could not be read
func (s *session[K]) runAll() (int, error) {
	s.runner.Reset()

	failed := 0
	for _, name := range s.conf.Scripts {
		ops, err := s.readScript(name)
		if nil != err {
			s.log.Errorf("script: %q  error: %s", name, err)
			return failed, err
		}

		s.log.Infof("script: %q  operations: %d", name, len(ops))
		if err := s.runner.Run(ops); nil != err {
			s.log.Errorf("script: %q  error: %s", name, err)
			failed += 1
		}
	}

	if r := s.conf.Random; r.Operations > 0 {
		ops := replay.Generate(r.Seed, r.Operations, r.KeyRange, s.makeKey)

		s.log.Infof("random: seed: %d  operations: %d  key range: %d", r.Seed, r.Operations, r.KeyRange)
		if err := s.runner.Run(ops); nil != err {
			s.log.Errorf("random: seed: %d  error: %s", r.Seed, err)
			failed += 1
		}
	}

	return failed, nil
}

// parse a script or fetch it from the cache, the cache key includes
// the modification time and size so a rewritten file is parsed again
func (s *session[K]) readScript(name string) ([]replay.Operation[K], error) {
	info, err := s.fs.Stat(name)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrNotFoundScript, "file: %q", name)
	}

	key := fmt.Sprintf("%s@%d:%d", name, info.ModTime().UnixNano(), info.Size())
	if item, found := s.scripts.Get(key); found {
		s.log.Debugf("script: %q  cached", name)
		return item.([]replay.Operation[K]), nil
	}

	ops, err := replay.ReadScript(s.fs, name, s.parseKey)
	if nil != err {
		return nil, err
	}
	s.scripts.SetDefault(key, ops)
	return ops, nil
}

// one line summary of the current statistics
func (s *session[K]) summary() string {
	stats := s.runner.Statistics()
	tree := s.runner.Tree()
	return fmt.Sprintf("operations: %d  inserted: %d  removed: %d  duplicates: %d  not found: %d  mismatches: %d  violations: %d  count: %d  height: %d",
		stats.Operations.Uint64(),
		stats.Inserted.Uint64(),
		stats.Removed.Uint64(),
		stats.Duplicates.Uint64(),
		stats.NotFound.Uint64(),
		stats.Mismatches.Uint64(),
		stats.Violations.Uint64(),
		tree.Count(),
		tree.Height(),
	)
}

// run once and report, true if every replay succeeded
func (s *session[K]) runAndReport(program string, quiet bool) bool {
	failed, err := s.runAll()
	if nil != err {
		if !quiet {
			fmt.Printf("%s: error: %s\n", program, err)
		}
		return false
	}

	s.log.Info(s.summary())
	if !quiet {
		fmt.Printf("%s: %s\n", program, s.summary())
		if failed > 0 {
			fmt.Printf("%s: %d replays failed\n", program, failed)
		}
	}
	return 0 == failed
}

// process - run the replays and optionally keep watching the scripts
func process[K cmp.Ordered](program string, log *logger.L, fs afero.Fs, conf *Configuration, quiet bool, parseKey func(string) (K, error), makeKey func(int) K) bool {
	s := newSession(log, fs, conf, parseKey, makeKey)

	ok := s.runAndReport(program, quiet)
	if !conf.Watch {
		return ok
	}

	channels := newWatcherChannel()
	watcher, err := newScriptWatcher(conf.Scripts, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	if !quiet {
		fmt.Printf("%s: watching %d scripts, CTRL-C (SIGINT) to stop\n", program, len(conf.Scripts))
	}

	// turn Signals into channel messages
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case <-channels.change:
			log.Info("scripts changed, replaying")
			ok = s.runAndReport(program, quiet)

		case <-channels.remove:
			log.Errorf("watch stopped: %s", fault.ErrWatchedFileRemoved)
			if !quiet {
				fmt.Printf("%s: %s\n", program, fault.ErrWatchedFileRemoved)
			}
			return false

		case sig := <-signals:
			log.Infof("received signal: %v", sig)
			return ok
		}
	}
}
