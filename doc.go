// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jail confines user-supplied filesystem paths to a pre-declared
// root directory.
//
// A Jail is constructed from a root directory and then used to resolve
// caller-supplied path fragments, rejecting any input whose fully resolved
// target would lie outside that root. This protects host code from
// directory-traversal attacks ("../"), absolute-path injection, symbolic-link
// escapes, broken-symlink ambiguity, and null-byte truncation attacks.
//
// # Quick start
//
// For one-off validation, use the package-level Join function:
//
//	safe, err := jail.Join("/var/uploads", userInput)
//	if err != nil {
//		return err
//	}
//	return os.WriteFile(safe, data, 0o644)
//
// For validating multiple paths against the same root, construct a Jail and
// reuse it:
//
//	j, err := jail.New("/var/uploads")
//	if err != nil {
//		return err
//	}
//	report, err := j.Join("2025/report.pdf")
//	invoice, err := j.Join("2025/invoice.pdf")
//
// # Type-safe paths
//
// [ValidatedPath] lets a function signature demand proof that a path has
// already been validated against some jail, which eliminates a class of
// "confused deputy" bugs where an unvalidated path is accidentally used:
//
//	func saveUpload(path jail.ValidatedPath, data []byte) error {
//		return os.WriteFile(path.Path(), data, 0o644)
//	}
//
//	p, err := j.JoinValidated("report.pdf")
//	if err == nil {
//		err = saveUpload(p, data)
//	}
//
// # TOCTOU hardening
//
// On Unix, [Jail.Open], [Jail.Create], [Jail.CreateOrTruncate] and
// [Jail.OpenAppend] open the resolved path with the platform's no-follow
// flag on the final path component, closing the narrow window between path
// validation and first access. This protects the final component only; it
// does not protect against symlink swaps on intermediate directories, which
// would require directory-handle-anchored resolution and is out of scope
// for this package.
//
// # Concurrency
//
// A Jail holds only an immutable canonical root path and is safe to share
// across goroutines. No operation mutates the Jail. The underlying
// filesystem is shared, uncontrolled state; a resolved path is a
// point-in-time proof of containment, not a standing guarantee.
package jail
