// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/lootmix/lootmix/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	seed       seedFlag
	mix        mixFlag
	sourceDir  string
	outputDir  string
	spoiler    bool
	verbose    bool
	configFile string
}

// NewRootCommand builds the lootmix command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "lootmix",
		Short: "Shuffle Minecraft loot tables into a datapack",
		Long: TitleStyle.Render("lootmix") + SubtitleStyle.Render(" - Shuffle Minecraft loot tables into a datapack") + `

lootmix reads the vanilla loot tables (one folder per group: blocks, chests,
entities, gameplay) and writes a datapack in which every table drops what
another one used to. The same seed always yields the same datapack.

` + SubtitleStyle.Render("Examples:") + `
  lootmix                                  Shuffle everything with a fresh seed
  lootmix --seed 42                        Shuffle everything with seed 42
  lootmix --mix blocks,chests              Shuffle blocks and chests together, keep the rest
  lootmix --mix blocks --mix entities      Shuffle blocks and entities separately
  lootmix groups                           List the groups found under loot_tables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, opts)
		},
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/lootmix/config.cue)")
	pf.StringVar(&opts.sourceDir, "source", "", "loot table directory (default from config: loot_tables)")

	f := rootCmd.Flags()
	f.VarP(&opts.seed, "seed", "s", "seed of the shuffle (default: random, printed)")
	f.Var(&opts.mix, "mix", "comma-separated groups shuffled together; repeat for separate pools (default: everything)")
	f.StringVarP(&opts.outputDir, "output", "o", "", "directory the datapack is written to (default from config: .)")
	f.BoolVar(&opts.spoiler, "spoiler", false, "also write a YAML log of every relabeling")

	rootCmd.AddCommand(newGroupsCommand(app, opts))
	rootCmd.AddCommand(newConfigCommand(app, opts))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and runs the root command. It is called by
// main.main() and exits the process with the command's status.
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(int(types.ExitFailure))
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}
