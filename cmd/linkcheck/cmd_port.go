package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/livebridge/linkcheck/pkg/endpoint"
	"github.com/livebridge/linkcheck/pkg/output"
	"github.com/livebridge/linkcheck/pkg/portcheck"
)

var portTimeout time.Duration

var portCmd = &cobra.Command{
	Use:   "port <host:port>",
	Short: "Check that the bridge port accepts TCP connections",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortCheck,
}

func init() {
	portCmd.Flags().DurationVar(&portTimeout, "timeout", 5*time.Second, "connection timeout")
	rootCmd.AddCommand(portCmd)
}

func runPortCheck(_ *cobra.Command, args []string) error {
	host, port, err := splitTarget(args[0])
	if err != nil {
		return err
	}

	c := &portcheck.Check{
		Host:    host,
		Port:    port,
		Timeout: portTimeout,
	}

	result := c.Run()
	if !result.OK() {
		result.AddDetailf("alternate ports to try: %s", formatPorts(endpoint.SuggestAlternatePorts(port)))
	}
	output.PrintResult(result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
