// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the pathjail command-line tool, a thin consumer of
// the jail package used to exercise path validation from a shell.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathjail",
	Short: "Validate and open paths confined to a root directory",
	Long:  "pathjail is a small command-line front end for the jail package: it validates, resolves, and hardened-opens paths confined to a pre-declared root directory.",
}

// Execute runs the pathjail command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(watchCmd())
}
