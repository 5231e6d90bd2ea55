// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

import (
	"os"
	"path/filepath"
	"strings"
)

// Jail is a filesystem sandbox rooted at a canonical directory. Every
// resolver operation maps a caller-supplied path fragment to a resolved
// absolute path that is provably within the root, or returns a typed Error.
//
// A Jail holds only an immutable canonical root path, so it is trivially
// safe to share across goroutines and cheap to Clone.
type Jail struct {
	root string
}

// New creates a jail rooted at the given directory. The root is
// canonicalized immediately (symlinks and relative components resolved to
// an absolute path); a relative root is resolved against the process's
// current working directory first.
//
// New fails with KindInvalidRoot if the canonical root has no parent (it is
// a filesystem root such as "/" or "C:\") or is not a directory. Any other
// OS failure (the root does not exist, is unreadable, ...) is returned as
// KindIO.
func New(root string) (*Jail, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errIO(err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, errIO(err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return nil, errIO(err)
	}
	if !info.IsDir() {
		return nil, errInvalidRoot(canonical, "not a directory", nil)
	}

	if filepath.Dir(canonical) == canonical {
		return nil, errInvalidRoot(canonical, "filesystem root", nil)
	}

	return &Jail{root: canonical}, nil
}

// Root returns the jail's canonical root directory.
func (j *Jail) Root() string {
	return j.root
}

// String implements fmt.Stringer, returning the jail's root. This mirrors
// letting the jail itself stand in for a path, the way the original
// implementation lets a Jail be used anywhere a path is expected.
func (j *Jail) String() string {
	return j.root
}

// Clone returns a copy of the jail. Cloning copies only the root path
// string; the clone and the original produce identical results for every
// input.
func (j *Jail) Clone() *Jail {
	return &Jail{root: j.root}
}

// Join safely joins a relative path fragment to the jail root.
//
// Resolution walks the fragment component by component, interleaving
// lexical normalization with filesystem-level canonicalization: a
// non-existent tail is accepted lexically (so callers can resolve paths to
// files that don't exist yet), while every component that does exist is
// canonicalized and re-checked for containment before the walk continues.
// This is the load-bearing algorithm in the package: it cannot be replaced
// by a single call to the host's canonicalization primitive, which requires
// the whole path to exist.
//
// Join fails with KindInvalidPath if fragment contains a null byte or is
// absolute, KindEscapedRoot if the resolved target (or an intermediate
// ".." traversal) lies outside the root, and KindBrokenSymlink if it
// encounters a symlink whose target does not exist.
//
// Use the returned path, not the original input.
func (j *Jail) Join(fragment string) (string, error) {
	if strings.ContainsRune(fragment, 0) {
		return "", errInvalidPath("null bytes not allowed")
	}
	if filepath.IsAbs(fragment) {
		return "", errInvalidPath("absolute paths not allowed")
	}
	if vol := filepath.VolumeName(fragment); vol != "" {
		return "", errInvalidPath("absolute components not allowed")
	}

	cursor := j.root
	for _, component := range splitComponents(fragment) {
		switch component {
		case ".":
			// Ignored.
		case "..":
			cursor = filepath.Dir(cursor)
			if !withinRoot(j.root, cursor) {
				return "", errEscapedRoot(fragment, j.root)
			}
			if pathExists(cursor) {
				next, err := j.verifyInside(cursor)
				if err != nil {
					if jerr, ok := err.(*Error); ok && jerr.Kind == KindEscapedRoot {
						jerr.Attempted = fragment
					}
					return "", err
				}
				cursor = next
			} else if isSymlink(cursor) {
				return "", errBrokenSymlink(cursor)
			}
		default:
			candidate := filepath.Join(cursor, component)
			if pathExists(candidate) {
				next, err := j.verifyInside(candidate)
				if err != nil {
					if jerr, ok := err.(*Error); ok && jerr.Kind == KindEscapedRoot {
						jerr.Attempted = fragment
					}
					return "", err
				}
				cursor = next
			} else if isSymlink(candidate) {
				return "", errBrokenSymlink(candidate)
			} else {
				cursor = candidate
			}
		}
	}
	return cursor, nil
}

// verifyInside canonicalizes an existing path and checks that it is still
// contained within the jail root, returning the canonical form on success.
// If canonicalization fails (e.g. the path vanished mid-walk), a path that is
// still a symlink is reported as KindBrokenSymlink and any other failure as
// KindIO.
func (j *Jail) verifyInside(path string) (string, error) {
	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		if isSymlink(path) {
			return "", errBrokenSymlink(path)
		}
		return "", errIO(err)
	}
	if !withinRoot(j.root, canonical) {
		return "", errEscapedRoot(path, j.root)
	}
	return canonical, nil
}

// JoinSegments validates and joins an ordered sequence of path segments.
// Each segment is checked independently before concatenation: empty
// segments are skipped, and a segment containing a forward slash, backward
// slash, null byte, or equal to ".." is rejected with KindInvalidPath before
// any filesystem work happens. The concatenated result is then passed
// through Join, which re-applies all of its own checks.
//
// This exists so that callers assembling a path from several untrusted
// inputs cannot let one segment smuggle a traversal that only the combined,
// single-string form would have caught.
func (j *Jail) JoinSegments(segments []string) (string, error) {
	joined, err := joinSegments(segments)
	if err != nil {
		return "", err
	}
	return j.Join(joined)
}

func joinSegments(segments []string) (string, error) {
	var kept []string
	for _, s := range segments {
		if s == "" {
			continue
		}
		if strings.ContainsRune(s, 0) {
			return "", errInvalidPath("null bytes not allowed in segment")
		}
		if strings.ContainsAny(s, "/\\") {
			return "", errInvalidPath("path separator not allowed in segment")
		}
		if s == ".." {
			return "", errInvalidPath(`".." not allowed as a segment`)
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, string(os.PathSeparator)), nil
}

// Contains verifies that an absolute, already-existing path lies within the
// jail root, returning its canonical form on success.
//
// Use the returned path, not the original input.
func (j *Jail) Contains(absolute string) (string, error) {
	if !filepath.IsAbs(absolute) {
		return "", errInvalidPath("path must be absolute")
	}
	return j.verifyInside(absolute)
}

// Relative extracts the jail-root-relative portion of a path. This is the
// inverse of Join: for an absolute path it requires existence and
// canonicalizes via Contains; for a relative path it routes through Join so
// a not-yet-existent target still produces a result. It is intended for
// producing portable, root-independent path records for storage.
//
// Use the returned path, not the original input.
func (j *Jail) Relative(path string) (string, error) {
	var resolved string
	var err error
	if filepath.IsAbs(path) {
		resolved, err = j.Contains(path)
	} else {
		resolved, err = j.Join(path)
	}
	if err != nil {
		return "", err
	}

	if !withinRoot(j.root, resolved) {
		return "", errEscapedRoot(path, j.root)
	}
	rel := strings.TrimPrefix(resolved, j.root)
	rel = strings.TrimPrefix(rel, string(os.PathSeparator))
	return rel, nil
}

// JoinValidated is Join, wrapping the result in a ValidatedPath so the
// caller's type system can encode "this parameter is known safe".
func (j *Jail) JoinValidated(fragment string) (ValidatedPath, error) {
	p, err := j.Join(fragment)
	if err != nil {
		return ValidatedPath{}, err
	}
	return newValidatedPath(p), nil
}

// JoinSegmentsValidated is JoinSegments, wrapping the result in a
// ValidatedPath.
func (j *Jail) JoinSegmentsValidated(segments []string) (ValidatedPath, error) {
	p, err := j.JoinSegments(segments)
	if err != nil {
		return ValidatedPath{}, err
	}
	return newValidatedPath(p), nil
}

// splitComponents splits a path fragment into its lexical components
// without collapsing ".." the way filepath.Clean would, since the resolver
// needs to inspect each ".." individually against the filesystem. Both
// slash forms are treated as separators on Windows; on POSIX-like hosts
// only '/' separates and '\' is a legal filename rune.
func splitComponents(fragment string) []string {
	normalized := fragment
	if os.PathSeparator == '\\' {
		normalized = strings.ReplaceAll(normalized, "/", "\\")
	}
	raw := strings.Split(normalized, string(os.PathSeparator))
	components := make([]string, 0, len(raw))
	for _, c := range raw {
		if c != "" {
			components = append(components, c)
		}
	}
	return components
}

// withinRoot reports whether path is root or lies lexically beneath it,
// using a component-wise comparison rather than a bare string prefix: a
// trailing separator is appended to both sides before comparing, so that
// "/root-evil" is never mistaken for being inside root "/root".
func withinRoot(root, path string) bool {
	sep := string(os.PathSeparator)
	rootWithSep := root
	if rootWithSep != sep {
		rootWithSep += sep
	}
	pathWithSep := path
	if pathWithSep != sep {
		pathWithSep += sep
	}
	return strings.HasPrefix(pathWithSep, rootWithSep)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}
