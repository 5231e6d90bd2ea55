//go:build unix

// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tenuo-ai/path-jail"
)

func openCmd() *cobra.Command {
	var maxBytes int64

	cmd := &cobra.Command{
		Use:   "open <root> <path>",
		Short: "Open <path> inside <root> with no-follow protection and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, fragment := args[0], args[1]

			j, err := jail.New(root)
			if err != nil {
				return err
			}
			f, err := j.Open(fragment)
			if err != nil {
				return err
			}
			defer f.Close()

			_, err = io.Copy(cmd.OutOrStdout(), io.LimitReader(f, maxBytes))
			return err
		},
	}
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 1<<20, "maximum number of bytes to print")
	return cmd
}
