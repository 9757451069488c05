package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/livebridge/linkcheck/pkg/endpoint"
	"github.com/livebridge/linkcheck/pkg/pingcheck"
)

var (
	hostTimeout      time.Duration
	hostFallbackPort int
)

var hostCmd = &cobra.Command{
	Use:   "host <host>",
	Short: "Check that a host is reachable (ICMP echo with TCP fallback)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHostCheck,
}

func init() {
	hostCmd.Flags().DurationVar(&hostTimeout, "timeout", 5*time.Second, "probe timeout")
	hostCmd.Flags().IntVar(&hostFallbackPort, "fallback-port", endpoint.DefaultPort,
		"TCP port tried when the ICMP echo fails")
	rootCmd.AddCommand(hostCmd)
}

func runHostCheck(_ *cobra.Command, args []string) error {
	c := &pingcheck.Check{
		Host:         args[0],
		Timeout:      hostTimeout,
		FallbackPort: hostFallbackPort,
	}

	return runCheck(c)
}
