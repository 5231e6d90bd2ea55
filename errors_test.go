// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk exploded")
	err := errIO(cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestError_Rendering(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  *Error
		want string
	}{
		{"escaped-root", errEscapedRoot("../etc/passwd", "/var/uploads"), `path "../etc/passwd" escapes jail root "/var/uploads"`},
		{"broken-symlink", errBrokenSymlink("/var/uploads/dead"), `broken symlink at "/var/uploads/dead" (cannot verify target)`},
		{"invalid-path", errInvalidPath("absolute paths not allowed"), "invalid path: absolute paths not allowed"},
		{"invalid-root", errInvalidRoot("/", "filesystem root", nil), `invalid root "/": filesystem root`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestKind_String(t *testing.T) {
	for kind, want := range map[Kind]string{
		KindEscapedRoot:   "escaped root",
		KindBrokenSymlink: "broken symlink",
		KindInvalidPath:   "invalid path",
		KindInvalidRoot:   "invalid root",
		KindIO:            "io",
	} {
		assert.Equal(t, want, kind.String())
	}
}
