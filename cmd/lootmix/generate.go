// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lootmix/lootmix/internal/app/generate"
	"github.com/lootmix/lootmix/internal/config"
	"github.com/lootmix/lootmix/internal/discovery"
	"github.com/lootmix/lootmix/internal/issue"
	"github.com/lootmix/lootmix/pkg/datapack"
	"github.com/lootmix/lootmix/pkg/mix"
	"github.com/lootmix/lootmix/pkg/types"
)

// runGenerate validates the flags, then hands the request to the generator.
// Seed and --mix problems are reported before the tree is read.
func runGenerate(cmd *cobra.Command, app *App, opts *rootOptions) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	cmd.SilenceUsage = true

	seed, drawn, err := opts.seed.resolve()
	if err != nil {
		return fail(stderr, newServiceError(err, issue.InvalidSeedId, ""), "auto")
	}

	cfg, err := loadConfig(ctx, app, opts)
	if err != nil {
		return fail(stderr, newServiceError(err, issue.ConfigLoadFailedId, ""), "auto")
	}
	style := cfg.GlamourStyle()

	sel, err := mix.ParseSelection(opts.mix.sets, cfg.MixGroups())
	if err != nil {
		return fail(stderr, newServiceError(err, selectionIssue(err), ""), style)
	}

	verbose := opts.verbose || cfg.UI.Verbose
	req := generate.Request{
		Seed:             seed,
		Selection:        sel,
		SourceDir:        cfg.SourceDir,
		OutputDir:        cfg.OutputDir,
		Exclude:          cfg.Exclude,
		CompressionLevel: cfg.CompressionLevel,
		Spoiler:          opts.spoiler,
	}

	seedNote := ""
	if drawn {
		seedNote = " " + SubtitleStyle.Render("(random)")
	}
	fmt.Fprintln(stdout, labelStyle.Render("Seed")+CmdStyle.Render(seed.String())+seedNote)

	res, err := app.generator(newLogger(stderr, verbose)).Generate(ctx, req)
	if err != nil {
		return fail(stderr, newServiceError(err, generateIssue(err), ""), style)
	}

	renderDiagnostics(stderr, res.Diagnostics, verbose)
	renderResult(stdout, sel, res, verbose)
	return nil
}

// loadConfig loads the configuration and applies the flag overrides.
func loadConfig(ctx context.Context, app *App, opts *rootOptions) (*config.Config, error) {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configFile})
	if err != nil {
		return nil, err
	}
	if opts.sourceDir != "" {
		cfg.SourceDir = opts.sourceDir
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	return cfg, nil
}

// fail renders the issue guidance of svcErr and returns the error that makes
// the process exit with a failure status.
func fail(stderr io.Writer, svcErr *ServiceError, style string) error {
	renderServiceError(stderr, svcErr, style)
	return &ExitError{Code: types.ExitFailure, Err: svcErr}
}

func selectionIssue(err error) issue.Id {
	switch {
	case errors.Is(err, mix.ErrUnknownGroup):
		return issue.UnknownGroupId
	case errors.Is(err, mix.ErrDuplicateGroup):
		return issue.DuplicateGroupId
	default:
		return 0
	}
}

func generateIssue(err error) issue.Id {
	switch {
	case errors.Is(err, discovery.ErrRootNotFound):
		return issue.SourceTreeNotFoundId
	case errors.Is(err, datapack.ErrSourceUnreadable):
		return issue.SourceUnreadableId
	case errors.Is(err, generate.ErrOutputWrite):
		return issue.OutputWriteFailedId
	default:
		return 0
	}
}

// renderDiagnostics lists skipped paths in verbose mode and summarizes them
// otherwise.
func renderDiagnostics(w io.Writer, diags []discovery.Diagnostic, verbose bool) {
	if len(diags) == 0 {
		return
	}
	if !verbose {
		fmt.Fprintf(w, "%s %d path(s) left out of the datapack, run with --verbose for details\n",
			WarningStyle.Render("!"), len(diags))
		return
	}
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s %s\n", WarningStyle.Render("!"), SubtitleStyle.Render("["+d.Code+"]"), d.Message)
	}
}

func renderResult(w io.Writer, sel mix.Selection, res generate.Result, verbose bool) {
	fmt.Fprintf(w, "%s Created datapack %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(res.Path))
	fmt.Fprintln(w, labelStyle.Render("Mix")+sel.String())
	fmt.Fprintln(w, labelStyle.Render("Tables")+
		fmt.Sprintf("%d shuffled, %d vanilla, %d records", res.Shuffled, res.Vanilla, res.Records))
	fmt.Fprintln(w, labelStyle.Render("Digest")+VerboseStyle.Render(res.Digest.String()))
	if verbose && res.Fingerprint != "" {
		fmt.Fprintln(w, labelStyle.Render("Source")+VerboseStyle.Render("blake3:"+res.Fingerprint))
	}
	if res.SpoilerPath != "" {
		fmt.Fprintln(w, labelStyle.Render("Spoiler")+res.SpoilerPath)
	}
}
