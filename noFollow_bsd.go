//go:build darwin || freebsd || openbsd || netbsd || dragonfly

// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

// noFollowFlag is O_NOFOLLOW on the BSD/Darwin family.
const noFollowFlag = 0x0100
