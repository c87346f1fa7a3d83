// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// Loader - read the rules from a file
type Loader func(fileName string) ([]*Rule, error)

// Watcher - reloads a static layout whenever its file changes
//
// a file that fails to load leaves the current rules in place
type Watcher struct {
	log      *logger.L
	layout   *StaticLayout
	load     Loader
	fileName string
	watcher  *fsnotify.Watcher
	reloaded chan struct{}
}

// NewWatcher - watch fileName for changes
func NewWatcher(fileName string, layout *StaticLayout, load Loader, log *logger.L) (*Watcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(fileName); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	// watch the directory so editors that replace the file are seen
	if err := watcher.Add(filepath.Dir(fileName)); nil != err {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		layout:   layout,
		load:     load,
		fileName: fileName,
		watcher:  watcher,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Reloaded - receives after each successful reload
func (w *Watcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Run - background process loop
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	defer w.watcher.Close()

	log.Infof("watching: %s", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.fileName {
				continue loop
			}
			if !isChange(event) {
				continue loop
			}
			log.Infof("file event: %v", event)
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Info("shutting down…")
}

func (w *Watcher) reload() {
	rules, err := w.load(w.fileName)
	if nil != err {
		w.log.Errorf("reload: %s  error: %s", w.fileName, err)
		return
	}
	w.layout.Replace(rules)
	w.log.Infof("reloaded: %d rules", len(rules))

	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
