package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "linkcheck",
	Short:   "Pre-flight readiness checks for a Live Link bridge endpoint",
	Long: "Linkcheck validates that a Live Link bridge endpoint is ready for a connection attempt:\n" +
		"the host is reachable, the message bus port accepts connections, and a local engine\n" +
		"installation satisfies the bridge's runtime prerequisites.",
	Version: Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
