// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
)

const (
	watcherLoggerPrefix = "watcher"
)

// WatcherChannel - events passed to the main loop
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// ScriptWatcher - notify when any of a set of script files is
// rewritten or removed
type ScriptWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channels WatcherChannel
	files    map[string]struct{}
}

func newScriptWatcher(fileNames []string, log *logger.L, channels WatcherChannel) (*ScriptWatcher, error) {
	files := make(map[string]struct{}, len(fileNames))
	for _, name := range fileNames {
		path, err := filepath.Abs(filepath.Clean(name))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(path) {
			return nil, errors.Wrapf(fault.ErrNotFoundScript, "file: %q", path)
		}
		files[path] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, errors.Wrapf(fault.ErrWatcherSetup, "fsnotify: %s", err)
	}

	return &ScriptWatcher{
		log:      log,
		watcher:  watcher,
		channels: channels,
		files:    files,
	}, nil
}

// Start - watch all files, events are delivered until Stop is called
// or a file is removed
func (w *ScriptWatcher) Start() error {
	for path := range w.files {
		if err := w.watcher.Add(path); nil != err {
			w.log.Errorf("watcher add: %q  error: %s", path, err)
			return errors.Wrapf(fault.ErrWatcherSetup, "file: %q  error: %s", path, err)
		}
		w.log.Infof("watching: %q", path)
	}

	go w.loop()
	return nil
}

// Stop - release the underlying watcher, this ends the event loop
func (w *ScriptWatcher) Stop() {
	if err := w.watcher.Close(); nil != err {
		w.log.Warnf("watcher close error: %s", err)
	}
}

func (w *ScriptWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Errorf("file: %q removed, stop", event.Name)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
				w.log.Debugf("file: %q not watched, discard event", event.Name)
				continue
			}

			if watcherEventFileChange(event) {
				w.log.Infof("file: %q changed", event.Name)
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watcher error: %s", err)
		}
	}
}

func (w *ScriptWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// a pending event already covers this one
func (w *ScriptWatcher) sendEvent(ch chan<- struct{}, name string) {
	if w.isChannelFull(ch) {
		w.log.Debugf("event channel: %s full, discard event", name)
		return
	}
	ch <- struct{}{}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
