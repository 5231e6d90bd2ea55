// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_AcceptsPathInsideRoot(t *testing.T) {
	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := checkCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir, "a/b.txt"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, filepath.Join(dir, "a", "b.txt")+"\n", out.String())
}

func TestCheckCmd_RejectsEscapingPath(t *testing.T) {
	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	cmd := checkCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{dir, "../escape"})

	require.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "rejected")
}
