// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lootmix/lootmix/internal/config"
	"github.com/lootmix/lootmix/internal/issue"
)

// newConfigCommand creates the `lootmix config` command tree.
func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lootmix configuration",
		Long: `Manage lootmix configuration.

Configuration is read from the first of:
  - the file given with --config
  - Linux: ~/.config/lootmix/config.cue
    macOS: ~/Library/Application Support/lootmix/config.cue
    Windows: %APPDATA%\lootmix\config.cue
  - ./config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: opts.configFile})
			if err != nil {
				return fail(cmd.ErrOrStderr(), newServiceError(err, issue.ConfigLoadFailedId, ""), "auto")
			}
			path, err := config.Locate(config.LoadOptions{ConfigFilePath: opts.configFile})
			if err != nil {
				return err
			}
			showConfig(cmd.OutOrStdout(), cfg, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd.OutOrStdout(), opts.configFile)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig("")
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			w := cmd.OutOrStdout()
			if !created {
				fmt.Fprintf(w, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
				return nil
			}
			fmt.Fprintf(w, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config, path string) {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("source_dir"), valueStyle.Render(cfg.SourceDir))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output_dir"), valueStyle.Render(cfg.OutputDir))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("groups"), valueStyle.Render(strings.Join(cfg.Groups, ", ")))
	if len(cfg.Exclude) == 0 {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("exclude"), SubtitleStyle.Render("(none)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("exclude"), valueStyle.Render(strings.Join(cfg.Exclude, ", ")))
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("compression_level"), valueStyle.Render(fmt.Sprint(cfg.CompressionLevel)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprint(cfg.UI.Verbose)))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
}

func showConfigPath(w io.Writer, override string) error {
	path, err := config.Locate(config.LoadOptions{ConfigFilePath: override})
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(w, "Config file: %s\n", path)
		return nil
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s %s\n",
		filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt),
		SubtitleStyle.Render("(not created yet, run `lootmix config init`)"))
	return nil
}
