package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/livebridge/linkcheck/pkg/endpoint"
	"github.com/livebridge/linkcheck/pkg/installcheck"
	"github.com/livebridge/linkcheck/pkg/output"
	"github.com/livebridge/linkcheck/pkg/pingcheck"
	"github.com/livebridge/linkcheck/pkg/portcheck"
)

var (
	readyTimeout     time.Duration
	readyInstallPath string
)

var readyCmd = &cobra.Command{
	Use:   "ready <host:port>",
	Short: "Full readiness report: reachability, port, and installation",
	Args:  cobra.ExactArgs(1),
	RunE:  runReadyCheck,
}

func init() {
	readyCmd.Flags().DurationVar(&readyTimeout, "timeout", 5*time.Second, "per-probe timeout")
	readyCmd.Flags().StringVar(&readyInstallPath, "install", "",
		"engine installation path to validate alongside the endpoint")
	rootCmd.AddCommand(readyCmd)
}

func runReadyCheck(_ *cobra.Command, args []string) error {
	host, port, err := splitTarget(args[0])
	if err != nil {
		return err
	}

	failed := false

	ping := &pingcheck.Check{Host: host, Timeout: readyTimeout, FallbackPort: port}
	result := ping.Run()
	failed = failed || !result.OK()
	output.PrintResult(result)

	pc := &portcheck.Check{Host: host, Port: port, Timeout: readyTimeout}
	result = pc.Run()
	if !result.OK() {
		result.AddDetailf("alternate ports to try: %s", formatPorts(endpoint.SuggestAlternatePorts(port)))
	}
	failed = failed || !result.OK()
	output.PrintResult(result)

	if readyInstallPath != "" {
		ic := &installcheck.Check{Path: readyInstallPath}
		result = ic.Run()
		failed = failed || !result.OK()
		output.PrintResult(result)
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}
