//go:build unix && !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

// noFollowFlag is 0 on Unix families without a known O_NOFOLLOW value,
// which degrades hardened opens to non-hardened behavior. Callers needing
// guaranteed hardening on these platforms should check HasNoFollow.
const noFollowFlag = 0
