// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watcher re-validates filesystem events against a jail as they
// happen, demonstrating that a Jail is safe to reuse concurrently from an
// event-driven loop (see the concurrency model in the jail package docs).
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/tenuo-ai/path-jail"
)

// Event reports the outcome of re-validating one filesystem change against
// a jail. ID is a per-event correlation id, so that log lines from several
// concurrently running watchers can be told apart.
type Event struct {
	ID   string
	Op   fsnotify.Op
	Path string
	Rel  string
	Err  error
}

// Watcher watches a jail's root directory (non-recursively; fsnotify does
// not report events from subdirectories of a watched path) for filesystem
// events and re-validates the touched path against the jail on every event.
// Events for paths that no longer pass containment are reported with their
// error rather than silently dropped.
type Watcher struct {
	jail    *jail.Jail
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter
	events  chan Event
}

// New starts watching root (via j) for filesystem changes. eventsPerSecond
// bounds how many events the watcher re-validates per second, across all
// paths. Events beyond that rate are delayed, not dropped or coalesced: a
// file rewritten in a tight loop is still re-validated once per event.
func New(j *jail.Jail, eventsPerSecond float64) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(j.Root()); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, fmt.Errorf("watcher: watch %q: %w", j.Root(), err)
	}

	w := &Watcher{
		jail:    j,
		fsw:     fsw,
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), 1),
		events:  make(chan Event),
	}
	return w, nil
}

// Events returns the channel of re-validated filesystem events. Run must be
// called (typically in its own goroutine) to populate it.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the underlying fsnotify watcher. The event channel is left
// open: Run observes ctx cancellation independently, and closing the
// channel here would race a concurrent Run goroutine still sending on it.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run pumps fsnotify events into re-validation until ctx is canceled or the
// underlying watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
			w.handle(ctx, ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.emit(ctx, Event{ID: uuid.NewString(), Err: fmt.Errorf("watcher: fsnotify error: %w", err)})
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) {
	id := uuid.NewString()

	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		w.emit(ctx, Event{ID: id, Op: ev.Op, Path: ev.Name, Err: err})
		return
	}

	// Removed or renamed-away paths no longer exist, so Relative (which
	// requires existence for an absolute input) can't be used; compute the
	// jail-relative form lexically instead so a removal is still reported
	// with a path.
	if ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
		rel, relErr := lexicalRelative(w.jail.Root(), abs)
		w.emit(ctx, Event{ID: id, Op: ev.Op, Path: abs, Rel: rel, Err: relErr})
		return
	}

	canonical, err := w.jail.Contains(abs)
	if err != nil {
		w.emit(ctx, Event{ID: id, Op: ev.Op, Path: abs, Err: err})
		return
	}
	rel, err := w.jail.Relative(canonical)
	w.emit(ctx, Event{ID: id, Op: ev.Op, Path: canonical, Rel: rel, Err: err})
}

// emit delivers ev to the events channel, abandoning the send instead of
// blocking forever if ctx is canceled before a reader picks it up.
func (w *Watcher) emit(ctx context.Context, ev Event) {
	select {
	case w.events <- ev:
	case <-ctx.Done():
	}
}

// lexicalRelative computes abs's root-relative path without touching the
// filesystem, for events whose target may already be gone by the time it's
// handled.
func lexicalRelative(root, abs string) (string, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("watcher: %q is not relative to %q: %w", abs, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("watcher: %q escapes jail root %q", abs, root)
	}
	return rel, nil
}

// WaitFor blocks until either an event arrives or d elapses, returning
// (Event{}, false) on timeout. Useful for tests that don't want to block
// forever on a quiet filesystem.
func (w *Watcher) WaitFor(d time.Duration) (Event, bool) {
	select {
	case ev, ok := <-w.events:
		return ev, ok
	case <-time.After(d):
		return Event{}, false
	}
}
