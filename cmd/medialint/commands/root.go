// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands wires up the medialint command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the medialint root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("MEDIALINT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "medialint",
		Short:         "medialint - media library naming checker",
		Long:          "medialint checks whether file and folder names in a media library follow the naming rules a media server expects. It never renames or modifies anything.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "path to a YAML config file")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-file", "", "also write logs to this file (rotated)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "shorthand for --log-level debug")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of medialint",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "medialint version %s\n", version)
		},
	})

	cmd.AddCommand(newScanCmd())

	return cmd
}
