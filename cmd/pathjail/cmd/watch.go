// Copyright (C) 2025 The path-jail Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tenuo-ai/path-jail"
	"github.com/tenuo-ai/path-jail/watcher"
)

func watchCmd() *cobra.Command {
	var eventsPerSecond float64

	cmd := &cobra.Command{
		Use:   "watch <root>",
		Short: "Watch <root> and re-validate every touched path against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			j, err := jail.New(root)
			if err != nil {
				return err
			}

			w, err := watcher.New(j, eventsPerSecond)
			if err != nil {
				return err
			}
			defer w.Close() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					slog.Error("pathjail watch: watcher stopped", "error", err)
				}
			}()

			slog.Info("pathjail watch: watching", "root", j.Root())
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-w.Events():
					if !ok {
						return nil
					}
					if ev.Err != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s %v: %v\n", ev.ID, ev.Op, ev.Path, ev.Err)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ev.ID, ev.Op, ev.Rel)
					}
				}
			}
		},
	}
	cmd.Flags().Float64Var(&eventsPerSecond, "rate", 10, "maximum re-validations per second")
	return cmd
}
