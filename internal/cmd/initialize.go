package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/netham45/fwbump/internal/header"
	"github.com/netham45/fwbump/internal/prompt"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a starter version header",
	Long: `Create a version header carrying the managed constants, starting
at 0.1.0-0. Refuses to overwrite an existing file unless --force is given
or the overwrite is confirmed interactively.`,
	Example: `  fwbump init
  fwbump init include/version.h`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultFile()
		if len(args) > 0 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			ok, err := prompt.New().Confirm(
				fmt.Sprintf("Overwrite %s?", path),
				"The existing header will be replaced with a fresh 0.1.0-0 scaffold.",
			)
			if err != nil {
				return err
			}
			if !ok {
				return prompt.ErrCanceled
			}
		}

		start := header.Version{Minor: 1}
		content := header.Scaffold(productName(), start)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s at version %s\n", path, start)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing header")
}
