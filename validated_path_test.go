// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatedPath_PathAndString(t *testing.T) {
	p := newValidatedPath("/var/uploads/report.pdf")
	assert.Equal(t, "/var/uploads/report.pdf", p.Path())
	assert.Equal(t, p.Path(), p.String())
}

func TestValidatedPath_Equal(t *testing.T) {
	a := newValidatedPath("/var/uploads/report.pdf")
	b := newValidatedPath("/var/uploads/report.pdf")
	c := newValidatedPath("/var/uploads/other.pdf")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
