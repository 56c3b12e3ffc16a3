// Package cmd implements the fwbump CLI commands using Cobra.
// The root command performs the bump itself; subcommands cover read-only
// inspection, header scaffolding, and configuration.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/netham45/fwbump/internal/config"
	"github.com/netham45/fwbump/internal/header"
	"github.com/netham45/fwbump/internal/prompt"
	"github.com/netham45/fwbump/internal/slogger"
)

var (
	// flagVerbosity counts -v occurrences (0 warn, 1 info, 2+ debug).
	flagVerbosity int

	// flagDryRun computes the new version without writing the file.
	flagDryRun bool

	// flagInteractive selects the increment kind from a prompt.
	flagInteractive bool
)

// appConfig holds the loaded application configuration.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "fwbump [path] [kind]",
	Short: "Bump firmware version constants in a header file",
	Long: `fwbump increments the firmware version constants kept in a C header
(version.h by default) and rewrites the derived version strings in place.

One of four fields is bumped per invocation: major, minor, patch, or build.
Bumping major resets minor and patch to zero; bumping minor resets patch.
Everything in the header outside the value spans is preserved byte-for-byte,
so the tool is safe to run from a build step.`,
	Example: `  # Bump the build number of ./version.h
  fwbump

  # Bump the patch level of a specific header
  fwbump include/version.h patch

  # See what a major bump would produce without writing
  fwbump --dry-run include/version.h major`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := slogger.New(slogger.Config{Verbosity: flagVerbosity})
		cmd.SetContext(slogger.WithLogger(cmd.Context(), logger))
	},
	RunE: runBump,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "compute the new version without writing the file")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "select the increment kind from a prompt")
}

func initConfig() {
	loader, err := config.NewLoader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize config: %v\n", err)
		return
	}

	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config validation failed: %v\n", err)
	}

	appConfig = cfg
}

func runBump(cmd *cobra.Command, args []string) error {
	path := defaultFile()
	kind := defaultKind()
	if len(args) > 0 {
		path = args[0]
	}
	if len(args) > 1 {
		kind = args[1]
	}

	if flagInteractive {
		if len(args) > 1 {
			return errors.New("cannot combine --interactive with a kind argument")
		}
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("--interactive requires a terminal")
		}
		idx, err := prompt.New().Choice("Which field should be bumped?", config.ValidKindNames())
		if err != nil {
			return err
		}
		kind = config.ValidKindNames()[idx]
	}

	field, err := header.ParseField(kind)
	if err != nil {
		return err
	}

	updater := newUpdater(cmd)

	if flagDryRun {
		res, err := updater.Preview(path, field)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Would increment: %s -> %s\n", field, res.New)
		return nil
	}

	res, err := updater.Update(path, field)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Version incremented: %s -> %s\n", field, res.New)
	return nil
}
