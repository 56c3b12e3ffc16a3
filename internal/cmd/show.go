package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showFull bool

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the version recorded in a header",
	Long: `Show the version currently recorded in a header file without
modifying it. Fields whose constants are missing read as zero.`,
	Example: `  fwbump show
  fwbump show --full include/version.h`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultFile()
		if len(args) > 0 {
			path = args[0]
		}

		v, err := newUpdater(cmd).Current(path)
		if err != nil {
			return err
		}

		if showFull {
			fmt.Fprintln(cmd.OutOrStdout(), v.Full(productName()))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showFull, "full", false, "print the full product version string")
}
