//go:build linux

// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

// noFollowFlag is O_NOFOLLOW on Linux. This is a stable OS ABI number, not a
// library constant, and is hard-coded per platform family rather than
// pulled from a single shared definition.
const noFollowFlag = 0o0400000
