package pinglat

import (
	"bufio"
	"fmt"
	"net"
	"time"
)

// Client measures one round trip against a pinglat server.
type Client struct {
	addr    string
	timeout time.Duration
}

// NewClient builds a client for the given target. The address must be
// an IPv4 literal.
func NewClient(address string, port int, timeout time.Duration) (*Client, error) {
	ip := net.ParseIP(address)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("%q is not an IPv4 address", address)
	}
	return &Client{
		addr:    net.JoinHostPort(address, fmt.Sprintf("%d", port)),
		timeout: timeout,
	}, nil
}

// Ping connects, sends PING, waits for PONG and returns the elapsed
// round-trip time including connection setup.
func (c *Client) Ping() (time.Duration, error) {
	start := time.Now()

	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(c.timeout))

	if _, err := fmt.Fprintln(conn, "PING"); err != nil {
		return 0, err
	}

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return 0, err
	}
	if line != "PONG\n" {
		return 0, fmt.Errorf("unexpected reply %q", line)
	}

	return time.Since(start), nil
}
