//go:build unix

// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jail

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// HasNoFollow reports whether this platform has a known O_NOFOLLOW value.
// On the rare Unix family where it does not, hardened opens silently
// degrade to ordinary opens; callers that require a guarantee should check
// this before relying on the hardened-open layer.
func HasNoFollow() bool {
	return noFollowFlag != 0
}

// ResolvedFile is a handle to a file opened with the platform's no-follow
// flag set on the final path component, closing the narrow TOCTOU window
// between path validation and first access. It forwards reads, writes,
// seeks and metadata to the underlying OS handle.
type ResolvedFile struct {
	f *os.File
}

// IntoFile returns the underlying *os.File. The ResolvedFile and the
// returned file share the same OS handle, so closing either closes both.
func (r *ResolvedFile) IntoFile() *os.File {
	return r.f
}

func (r *ResolvedFile) Read(b []byte) (int, error)                   { return r.f.Read(b) }
func (r *ResolvedFile) Write(b []byte) (int, error)                  { return r.f.Write(b) }
func (r *ResolvedFile) Seek(offset int64, whence int) (int64, error) { return r.f.Seek(offset, whence) }
func (r *ResolvedFile) Close() error                                 { return r.f.Close() }
func (r *ResolvedFile) Stat() (os.FileInfo, error)                   { return r.f.Stat() }
func (r *ResolvedFile) Name() string                                 { return r.f.Name() }

var (
	_ io.ReadWriteSeeker = (*ResolvedFile)(nil)
	_ io.Closer          = (*ResolvedFile)(nil)
)

// openNoFollow opens path with flags, bitwise-oring in O_CLOEXEC and the
// per-platform no-follow flag, and wraps the resulting fd as an *os.File the
// same way the teacher wraps unix.Openat results with os.NewFile.
func openNoFollow(path string, flags int, mode uint32) (*os.File, error) {
	fd, err := unix.Open(path, flags|unix.O_CLOEXEC|noFollowFlag, mode)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(fd), path), nil
}

// Open opens a file for reading with no-follow protection on the final path
// component: even if an attacker swaps the target for a symlink between
// resolution and open, the open fails instead of following it.
//
// Returns an error if the path would escape the jail, the file does not
// exist, the resolved path is a symlink at the time of the open, or
// permission is denied. A symlink that already exists when Join runs and
// points inside the jail is resolved by Join to its target, which is then
// opened.
func (j *Jail) Open(fragment string) (*ResolvedFile, error) {
	path, err := j.Join(fragment)
	if err != nil {
		return nil, err
	}
	f, err := openNoFollow(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}

// Create creates a new file with O_CREAT|O_EXCL plus no-follow. The target
// must not already exist, which prevents an attacker from pre-placing a
// symlink at the resolved path between validation and creation.
func (j *Jail) Create(fragment string) (*ResolvedFile, error) {
	path, err := j.Join(fragment)
	if err != nil {
		return nil, err
	}
	f, err := openNoFollow(path, unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL, 0o666)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}

// CreateOrTruncate opens a file for writing, creating it if absent and
// truncating it if present, with no-follow protection.
func (j *Jail) CreateOrTruncate(fragment string) (*ResolvedFile, error) {
	path, err := j.Join(fragment)
	if err != nil {
		return nil, err
	}
	f, err := openNoFollow(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o666)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}

// OpenAppend opens a file for appending, creating it if absent, with
// no-follow protection.
func (j *Jail) OpenAppend(fragment string) (*ResolvedFile, error) {
	path, err := j.Join(fragment)
	if err != nil {
		return nil, err
	}
	f, err := openNoFollow(path, unix.O_WRONLY|unix.O_CREAT|unix.O_APPEND, 0o666)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}

// Open opens this already-validated path for reading with no-follow
// protection. See [Jail.Open] for details.
func (p ValidatedPath) Open() (*ResolvedFile, error) {
	f, err := openNoFollow(p.path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}

// Create creates a new file at this already-validated path with
// O_CREAT|O_EXCL plus no-follow. See [Jail.Create] for details.
func (p ValidatedPath) Create() (*ResolvedFile, error) {
	f, err := openNoFollow(p.path, unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL, 0o666)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}

// CreateOrTruncate opens this already-validated path for writing, creating
// it if absent and truncating it if present, with no-follow protection.
// See [Jail.CreateOrTruncate] for details.
func (p ValidatedPath) CreateOrTruncate() (*ResolvedFile, error) {
	f, err := openNoFollow(p.path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o666)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}

// OpenAppend opens this already-validated path for appending, creating it
// if absent, with no-follow protection. See [Jail.OpenAppend] for details.
func (p ValidatedPath) OpenAppend() (*ResolvedFile, error) {
	f, err := openNoFollow(p.path, unix.O_WRONLY|unix.O_CREAT|unix.O_APPEND, 0o666)
	if err != nil {
		return nil, errIO(err)
	}
	return &ResolvedFile{f: f}, nil
}
