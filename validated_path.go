// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

// ValidatedPath is a path verified to be inside a Jail.
//
// It is a zero-cost wrapper that provides a compile-time guarantee: it can
// only be constructed by a Jail's resolver (JoinValidated,
// JoinSegmentsValidated),
// so a function that requires a ValidatedPath parameter cannot be handed an
// unvalidated string by accident. This is the "confused deputy" guard named
// in the package design: the sole purpose of the type is to let a function
// signature demand proof of prior validation.
//
// ValidatedPath carries no back-reference to the Jail that produced it and
// is not revalidated on use; a successful resolution is a point-in-time
// proof, not a standing guarantee against concurrent filesystem changes.
type ValidatedPath struct {
	path string
}

// newValidatedPath is unexported: construction is restricted to this
// package's Jail operations.
func newValidatedPath(path string) ValidatedPath {
	return ValidatedPath{path: path}
}

// Path borrows the validated path for read-only use.
func (p ValidatedPath) Path() string {
	return p.path
}

// String renders the validated path, satisfying fmt.Stringer.
func (p ValidatedPath) String() string {
	return p.path
}

// Equal reports whether two ValidatedPath values hold the same path.
func (p ValidatedPath) Equal(other ValidatedPath) bool {
	return p.path == other.path
}
