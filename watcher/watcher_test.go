// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenuo-ai/path-jail"
)

func TestWatcher_ReportsWriteInsideJail(t *testing.T) {
	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	j, err := jail.New(dir)
	require.NoError(t, err)

	w, err := New(j, 100)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx) //nolint:errcheck

	target := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(target, []byte("hi"), 0o644))

	ev, ok := w.WaitFor(2 * time.Second)
	require.True(t, ok, "expected a watcher event")
	assert.NotEmpty(t, ev.ID)
	assert.NoError(t, ev.Err)
	assert.Equal(t, "note.txt", ev.Rel)
}
