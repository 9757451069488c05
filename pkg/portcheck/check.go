package portcheck

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/livebridge/linkcheck/pkg/check"
	"github.com/livebridge/linkcheck/pkg/endpoint"
)

// DefaultTimeout bounds the TCP connect when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Dialer abstracts network dialing for testability.
type Dialer interface {
	DialTimeout(network, address string, timeout time.Duration) (net.Conn, error)
}

// RealDialer uses the real net package.
type RealDialer struct{}

// DialTimeout dials the network address with a timeout.
func (d *RealDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout(network, address, timeout)
}

// Outcome tags why a port probe succeeded or failed.
type Outcome string

const (
	OutcomeOK              Outcome = "ok"
	OutcomeTimeout         Outcome = "timeout"
	OutcomeUnreachable     Outcome = "unreachable"
	OutcomeInvalidArgument Outcome = "invalid-argument"
)

// IsValidPort reports whether p is a usable TCP port number.
func IsValidPort(p int) bool {
	return p >= 1 && p <= 65535
}

// Check probes whether a TCP port accepts connections.
type Check struct {
	Host    string        // target host (name or IP literal)
	Port    int           // target port, 1-65535
	Timeout time.Duration // connection timeout (default 5s)
	Dialer  Dialer        // injected for testing
}

// Probe attempts one TCP connect and reports the tagged outcome.
// Network failures are never surfaced as errors, only as outcomes.
func (c *Check) Probe() Outcome {
	host := strings.TrimSpace(c.Host)
	if host == "" || !IsValidPort(c.Port) {
		return OutcomeInvalidArgument
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	dialer := c.Dialer
	if dialer == nil {
		dialer = &RealDialer{}
	}

	address := net.JoinHostPort(host, strconv.Itoa(c.Port))
	conn, err := dialer.DialTimeout("tcp", address, timeout)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return OutcomeTimeout
		}
		return OutcomeUnreachable
	}
	defer func() { _ = conn.Close() }()

	return OutcomeOK
}

// Open reports whether the port accepted a connection.
func (c *Check) Open() bool {
	return c.Probe() == OutcomeOK
}

// IsPortOpen is a one-shot convenience over Check.
func IsPortOpen(host string, port int, timeout time.Duration) bool {
	c := Check{Host: host, Port: port, Timeout: timeout}
	return c.Open()
}

// Run executes the port probe as a named check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "port:" + endpoint.Format(c.Host, c.Port),
	}

	switch outcome := c.Probe(); outcome {
	case OutcomeOK:
		result.Status = check.StatusOK
		result.AddDetailf("connected to %s", endpoint.Format(c.Host, c.Port))
	case OutcomeInvalidArgument:
		return result.Failf("invalid target %s", endpoint.Format(c.Host, c.Port))
	case OutcomeTimeout:
		return result.Failf("connection timed out")
	default:
		return result.Failf("connection failed")
	}
	return result
}
