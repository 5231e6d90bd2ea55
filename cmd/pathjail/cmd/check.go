// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenuo-ai/path-jail"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <root> <path>",
		Short: "Validate that <path> resolves inside <root>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, fragment := args[0], args[1]

			resolved, err := jail.Join(root, fragment)
			if err != nil {
				var jerr *jail.Error
				if errors.As(err, &jerr) {
					fmt.Fprintf(cmd.ErrOrStderr(), "rejected (%s): %v\n", jerr.Kind, jerr)
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "rejected: %v\n", err)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
}
