package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewCmdRoot creates a new root command
func NewCmdRoot(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "streamkit",
		Short: "Streamkit, the Heliosinger streaming toolbox",
		Long: "Streamkit is an operator toolbox for the Heliosinger livestream setup.\n" +
			"It monitors the stream endpoints and verifies the local OBS configuration.",
		Version: version,
	}
	return rootCmd
}

// Execute adds all child commands to the root command
// and executes the cmd tree
func Execute(version string) {
	cmd := NewCmdRoot(version)
	cmd.AddCommand(NewCmdMonitor())
	cmd.AddCommand(NewCmdDoctor())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
