package main

import (
	"github.com/spf13/cobra"

	"github.com/livebridge/linkcheck/pkg/installcheck"
)

var installQuick bool

var installCmd = &cobra.Command{
	Use:   "install <path>",
	Short: "Check that an engine installation can host the bridge runtime",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstallCheck,
}

func init() {
	installCmd.Flags().BoolVar(&installQuick, "quick", false,
		"existence-only check, skip library verification")
	rootCmd.AddCommand(installCmd)
}

func runInstallCheck(_ *cobra.Command, args []string) error {
	c := &installcheck.Check{
		Path:  args[0],
		Quick: installQuick,
	}

	return runCheck(c)
}
