// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lootmix/lootmix/internal/discovery"
	"github.com/lootmix/lootmix/internal/issue"
)

// newGroupsCommand creates `lootmix groups`, which lists the groups --mix
// accepts and how many tables each holds.
func newGroupsCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the loot table groups and their table counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			cfg, err := loadConfig(cmd.Context(), app, opts)
			if err != nil {
				return fail(stderr, newServiceError(err, issue.ConfigLoadFailedId, ""), "auto")
			}

			tree, err := discovery.Discover(cmd.Context(), cfg.SourceDir, cfg.MixGroups(), discovery.Options{Exclude: cfg.Exclude})
			if err != nil {
				return fail(stderr, newServiceError(err, generateIssue(err), ""), cfg.GlamourStyle())
			}

			fmt.Fprintln(stdout, TitleStyle.Render("Loot table groups")+SubtitleStyle.Render(" in "+tree.Root()))
			for _, g := range tree.Groups() {
				fmt.Fprintf(stdout, "%s  %s\n", countStyle.Render(strconv.Itoa(len(tree.Files(g)))), g)
			}
			fmt.Fprintf(stdout, "%s  %s\n", countStyle.Render(strconv.Itoa(tree.Count())), SubtitleStyle.Render("total"))

			renderDiagnostics(stderr, tree.Diagnostics(), opts.verbose || cfg.UI.Verbose)
			return nil
		},
	}
}
