package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user-none/libview/standalone"
)

var opts standalone.Options

var rootCmd = &cobra.Command{
	Use:   "libview",
	Short: "Browse a game library in a scrollable grid",
	Long: `libview shows a game library as an icon grid or a list.
Selecting a game opens its detail panel inside the grid, and the view keeps
the content you were looking at in place while items open and close.`,
	Args:          cobra.NoArgs,
	PreRunE:       validateFlags,
	RunE:          runViewer,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&opts.DataDir, "data-dir", "", "Directory for config and library files (default: platform data directory)")
	rootCmd.Flags().StringVarP(&opts.LibraryPath, "library", "l", "", "Library file to open instead of library.json")
	rootCmd.Flags().StringVar(&opts.ViewMode, "view", "", `View mode: "icon" or "list" (default: from config)`)
	rootCmd.Flags().StringVar(&opts.OpenPolicy, "policy", "", `Open policy: "single" or "multi" (default: from config)`)
}

// execute runs the root command
func execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	standalone.Version = version
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("libview %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("libview %s\n", version)
}

func validateFlags(cmd *cobra.Command, args []string) error {
	switch opts.ViewMode {
	case "", "icon", "list":
	default:
		return fmt.Errorf("invalid --view %q (valid: icon, list)", opts.ViewMode)
	}
	switch opts.OpenPolicy {
	case "", "single", "multi":
	default:
		return fmt.Errorf("invalid --policy %q (valid: single, multi)", opts.OpenPolicy)
	}
	return nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	if err := standalone.Run(opts); err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}
