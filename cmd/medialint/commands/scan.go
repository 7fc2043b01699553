// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/medialint/medialint/cmd/medialint/internal/clierr"
	"github.com/medialint/medialint/internal/config"
	"github.com/medialint/medialint/internal/logging"
	"github.com/medialint/medialint/internal/runner"
	"github.com/medialint/medialint/internal/scanner"
)

func newScanCmd() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "scan [library-root]",
		Short: "Check file and folder names under a library root",
		Long: `Scan walks the library root, checks every media file's name (and the
names of its parent folders) against the movie or episode naming rules, and
prints a diagnostic for each violation. The scan is read-only.

Per-file failures are report content: the command still exits 0. A non-zero
exit means the scan itself could not run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return clierr.Wrap(1, "loading config", err)
			}

			if contentType != "" {
				cfg.ContentType = contentType
			}
			if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
				cfg.LogLevel = lvl
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cfg.LogLevel = "debug"
			}
			if lf, _ := cmd.Flags().GetString("log-file"); lf != "" {
				cfg.LogFile = lf
			}

			ct, err := runner.ParseContentType(cfg.ContentType)
			if err != nil {
				return clierr.Wrap(2, "invalid content type", err)
			}

			log := logging.New(cfg.LogLevel, cfg.LogFile)
			fsys := afero.NewOsFs()

			files, err := scanner.Scan(fsys, root, scanner.Options{Extensions: cfg.Extensions})
			if err != nil {
				return clierr.Wrap(1, "scanning library", err)
			}
			log.Info().Str("root", root).Int("files", len(files)).Msg("scan started")

			r := runner.New(fsys, log, cmd.OutOrStdout())
			stats, _ := r.Run(root, files, ct)
			log.Info().
				Int("checked", stats.Checked).
				Int("passed", stats.Passed).
				Int("failed", stats.Failed).
				Msg("scan complete")

			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "type", "t", "", "content type: movie, tv or auto (default from config)")

	return cmd
}
