// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_Package(t *testing.T) {
	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	got, err := Join(dir, "a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a", "b.txt"), got)
}

func TestJoin_Package_PropagatesConstructorError(t *testing.T) {
	_, err := Join(filepath.Join(t.TempDir(), "missing"), "a.txt")
	require.Error(t, err)
	var jerr *Error
	require.ErrorAs(t, err, &jerr)
}
