// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/models"
)

// WakeWatcher turns files dropped into a spool directory into wake-signal
// events. A file qualifies when its name ends in .json and its body is a
// wake message ({"type":"SYNC_PENDING_DATA"}); it is deleted once read.
type WakeWatcher struct {
	dir       string
	publisher Publisher
	logger    *logger.Logger
}

// NewWakeWatcher returns a watcher for dir.
func NewWakeWatcher(dir string, publisher Publisher, logger *logger.Logger) *WakeWatcher {
	return &WakeWatcher{
		dir:       dir,
		publisher: publisher,
		logger:    logger,
	}
}

// Run watches the directory until ctx is cancelled. Files already present
// when Run starts are consumed first.
func (w *WakeWatcher) Run(ctx context.Context) {
	if err := w.run(ctx); err != nil {
		w.logger.Err(err).Str("func", "WakeWatcher.Run").Str("dir", w.dir).Msg("wake watcher stopped")
	}
}

func (w *WakeWatcher) run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create wake directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch wake directory %s: %w", w.dir, err)
	}

	w.drain()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.consume(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "WakeWatcher.run").Msg("fsnotify error")
		}
	}
}

// drain consumes wake files written while nobody was watching.
func (w *WakeWatcher) drain() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Err(err).Str("func", "WakeWatcher.drain").Msg("failed to list wake directory")
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			w.consume(filepath.Join(w.dir, entry.Name()))
		}
	}
}

// consume reads path and publishes a wake-signal if it holds a wake message.
// A body that is not yet valid JSON is left in place: the writer may still be
// writing it and another Write event will follow.
func (w *WakeWatcher) consume(path string) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return
	}

	body, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			w.logger.Err(err).Str("func", "WakeWatcher.consume").Str("path", path).Msg("failed to read wake file")
		}
		return
	}

	var msg models.WakeMessage
	if err = json.Unmarshal(body, &msg); err != nil {
		return
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		w.logger.Err(err).Str("func", "WakeWatcher.consume").Str("path", path).Msg("failed to remove wake file")
	}

	if msg.Type != models.WakeMessageType {
		w.logger.Warn().Str("path", path).Str("type", msg.Type).Msg("ignoring wake file with unknown type")
		return
	}

	w.publisher.Publish(NewEvent(EventWakeSignal, "wake-file"))
}
