//go:build !unix

// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// On non-Unix platforms the hardened-open layer does not exist (see the
// jail package's build-tagged open_unix.go), so the "open" subcommand is
// registered but always fails rather than silently falling back to an
// unhardened open.
func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <root> <path>",
		Short: "Open <path> inside <root> with no-follow protection (unix only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("pathjail open: no-follow hardened opens are only available on unix")
		},
	}
}
