package pingcheck

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// Pinger abstracts the ICMP echo primitive for testability.
type Pinger interface {
	Ping(host string, timeout time.Duration) error
}

// RealPinger sends a single ICMP echo request and waits for the reply.
// It prefers unprivileged datagram ICMP sockets and falls back to raw
// sockets when the kernel refuses them.
type RealPinger struct{}

const (
	protocolICMP     = 1  // iana.ProtocolICMP
	protocolIPv6ICMP = 58 // iana.ProtocolIPv6ICMP
)

// Ping resolves host and performs one echo round-trip within timeout.
// A nil return means an echo reply arrived; any failure along the way
// (resolution, socket, write, read, deadline) is returned as-is.
func (p *RealPinger) Ping(host string, timeout time.Duration) error {
	addr, err := net.ResolveIPAddr("ip", host)
	if err != nil {
		return err
	}

	conn, dgram, proto, echoType, err := listen(addr.IP.To4() != nil)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	msg := icmp.Message{
		Type: echoType,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  1,
			Data: []byte("linkcheck"),
		},
	}
	wire, err := msg.Marshal(nil)
	if err != nil {
		return err
	}

	// Datagram ICMP sockets address peers as UDP endpoints.
	var dst net.Addr = addr
	if dgram {
		dst = &net.UDPAddr{IP: addr.IP, Zone: addr.Zone}
	}

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	if _, err := conn.WriteTo(wire, dst); err != nil {
		return err
	}

	buf := make([]byte, 1500)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return err
		}
		reply, err := icmp.ParseMessage(proto, buf[:n])
		if err != nil {
			continue
		}
		switch reply.Type {
		case ipv4.ICMPTypeEchoReply, ipv6.ICMPTypeEchoReply:
			return nil
		}
		// Unrelated ICMP traffic; keep reading until the deadline.
	}
}

func listen(isIPv4 bool) (conn *icmp.PacketConn, dgram bool, proto int, echoType icmp.Type, err error) {
	if isIPv4 {
		proto, echoType = protocolICMP, ipv4.ICMPTypeEcho
		if conn, err = icmp.ListenPacket("udp4", "0.0.0.0"); err == nil {
			return conn, true, proto, echoType, nil
		}
		if conn, err = icmp.ListenPacket("ip4:icmp", "0.0.0.0"); err == nil {
			return conn, false, proto, echoType, nil
		}
	} else {
		proto, echoType = protocolIPv6ICMP, ipv6.ICMPTypeEchoRequest
		if conn, err = icmp.ListenPacket("udp6", "::"); err == nil {
			return conn, true, proto, echoType, nil
		}
		if conn, err = icmp.ListenPacket("ip6:ipv6-icmp", "::"); err == nil {
			return conn, false, proto, echoType, nil
		}
	}
	return nil, false, 0, nil, fmt.Errorf("icmp socket unavailable: %w", err)
}
