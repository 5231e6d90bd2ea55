// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

// Join validates a path in one shot: it constructs a Jail rooted at root and
// joins fragment to it. It is provided purely to avoid two-line usages for
// callers validating a single path against a root they don't otherwise need
// to reuse; it is semantically equivalent to New followed by Jail.Join and
// is subject to the same guarantees and errors.
//
// Callers validating multiple paths against the same root should construct
// a Jail once with New and reuse it instead.
func Join(root, fragment string) (string, error) {
	j, err := New(root)
	if err != nil {
		return "", err
	}
	return j.Join(fragment)
}
