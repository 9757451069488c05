// Package endpoint renders bridge endpoint addresses and proposes
// alternate ports when the default is suspected to be taken. Everything
// here is pure computation; reachability of a suggestion is the caller's
// problem (see pingcheck and portcheck).
package endpoint

import (
	"fmt"
	"strings"
)

const (
	// DefaultPort is the bridge's well-known message bus port.
	DefaultPort = 11111
	// SecondaryPort is the conventional secondary listener port.
	SecondaryPort = 54321
)

// Endpoint is a host/port pair for a single validation call.
type Endpoint struct {
	Host string
	Port int
}

// New builds an Endpoint, rejecting an empty host or out-of-range port.
func New(host string, port int) (Endpoint, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return Endpoint{}, fmt.Errorf("host must not be empty")
	}
	if port < 1 || port > 65535 {
		return Endpoint{}, fmt.Errorf("port %d out of range [1, 65535]", port)
	}
	return Endpoint{Host: host, Port: port}, nil
}

// String renders the endpoint as host:port.
func (e Endpoint) String() string {
	return Format(e.Host, e.Port)
}

// Format renders host:port, bracketing bare IPv6 literals.
// An empty host renders as a "(none)" placeholder.
func Format(host string, port int) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Sprintf("(none):%d", port)
	}
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		return fmt.Sprintf("[%s]:%d", host, port)
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// SuggestAlternatePorts returns five candidate ports to try when base
// appears to be in use: nearby offsets first, then the well-known
// defaults. The sequence is deterministic and may contain duplicates;
// callers wanting a free port must still probe each candidate.
func SuggestAlternatePorts(base int) []int {
	wellKnown := DefaultPort
	if base == DefaultPort {
		wellKnown = DefaultPort + 1
	}
	return []int{
		base + 1,
		base + 10,
		base + 100,
		wellKnown,
		SecondaryPort,
	}
}
