package main

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/livebridge/linkcheck/pkg/portcheck"
)

// splitTarget parses a host:port argument, accepting bracketed IPv6
// literals like [::1]:11111.
func splitTarget(target string) (host string, port int, err error) {
	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		return "", 0, fmt.Errorf("invalid target %q: expected host:port", target)
	}
	if strings.TrimSpace(host) == "" {
		return "", 0, fmt.Errorf("invalid target %q: host must not be empty", target)
	}
	port, err = strconv.Atoi(portStr)
	if err != nil || !portcheck.IsValidPort(port) {
		return "", 0, fmt.Errorf("invalid port %q: must be 1-65535", portStr)
	}
	return host, port, nil
}

// formatPorts renders a port list for a result detail line.
func formatPorts(ports []int) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
