// Package pingcheck answers one question: is this host alive right now?
// The answer is deliberately best-effort. Probe failures are reported as
// "not reachable", never as errors, because a failed diagnostic must not
// block the caller from attempting a real connection anyway.
package pingcheck

import (
	"strings"
	"time"

	"github.com/livebridge/linkcheck/pkg/check"
	"github.com/livebridge/linkcheck/pkg/endpoint"
	"github.com/livebridge/linkcheck/pkg/portcheck"
)

// DefaultTimeout bounds each probe when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Method records how reachability was decided.
type Method string

const (
	MethodLoopback    Method = "loopback"
	MethodICMPEcho    Method = "icmp-echo"
	MethodTCPFallback Method = "tcp-fallback"
	MethodUnreachable Method = "unreachable"
)

// Probe is the tagged outcome of a reachability check.
type Probe struct {
	Reachable bool
	Method    Method
}

var localhostNames = map[string]struct{}{
	"localhost": {},
	"127.0.0.1": {},
	"::1":       {},
	"0.0.0.0":   {},
}

// IsLocalhost reports whether host names the local machine. Matching is
// case-insensitive and exact; an empty or whitespace host is not local.
func IsLocalhost(host string) bool {
	_, ok := localhostNames[strings.ToLower(strings.TrimSpace(host))]
	return ok
}

// Check probes whether a host is alive.
type Check struct {
	Host         string
	Timeout      time.Duration    // per-probe timeout (default 5s)
	FallbackPort int              // TCP port tried when the echo fails (default 11111)
	Pinger       Pinger           // injected for testing
	Dialer       portcheck.Dialer // injected for testing
}

// Probe decides reachability: loopback hosts short-circuit to reachable
// with no I/O, everything else gets one ICMP echo, and an echo failure
// falls back to a TCP connect against the bridge port. ICMP is routinely
// filtered or needs privileges the caller may not have, so a listening
// bridge port is accepted as an equally good liveness signal.
func (c *Check) Probe() Probe {
	host := strings.TrimSpace(c.Host)
	if host == "" {
		return Probe{Reachable: false, Method: MethodUnreachable}
	}
	if IsLocalhost(host) {
		return Probe{Reachable: true, Method: MethodLoopback}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	pinger := c.Pinger
	if pinger == nil {
		pinger = &RealPinger{}
	}
	if err := pinger.Ping(host, timeout); err == nil {
		return Probe{Reachable: true, Method: MethodICMPEcho}
	}

	port := c.FallbackPort
	if port == 0 {
		port = endpoint.DefaultPort
	}
	pc := portcheck.Check{Host: host, Port: port, Timeout: timeout, Dialer: c.Dialer}
	if pc.Open() {
		return Probe{Reachable: true, Method: MethodTCPFallback}
	}
	return Probe{Reachable: false, Method: MethodUnreachable}
}

// Reachable reports whether the host was deemed alive.
func (c *Check) Reachable() bool {
	return c.Probe().Reachable
}

// IsHostReachable is a one-shot convenience over Check.
func IsHostReachable(host string, timeout time.Duration) bool {
	c := Check{Host: host, Timeout: timeout}
	return c.Reachable()
}

// Run executes the reachability probe as a named check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "host:" + strings.TrimSpace(c.Host),
	}

	probe := c.Probe()
	if !probe.Reachable {
		return result.Failf("host not reachable")
	}
	result.Status = check.StatusOK
	result.AddDetailf("method: %s", probe.Method)
	return result
}
