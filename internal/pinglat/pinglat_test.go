package pinglat

import (
	"bufio"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/require"
)

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{DefaultPort, false},
		{MinPort, false},
		{MaxPort - 1, false},
		{MaxPort, true},
		{MinPort - 1, true},
		{0, true},
		{80, true},
	}

	for _, tt := range tests {
		err := ValidatePort(tt.port)
		if tt.wantErr {
			require.Error(t, err, "port %d", tt.port)
		} else {
			require.NoError(t, err, "port %d", tt.port)
		}
	}
}

func TestServerAnswersPingWithPong(t *testing.T) {
	req := require.New(t)
	s := &Server{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	client, server := net.Pipe()
	defer client.Close()
	go s.handle(server)

	_, err := client.Write([]byte("PING\n"))
	req.NoError(err)

	line, err := bufio.NewReader(client).ReadString('\n')
	req.NoError(err)
	req.Equal("PONG\n", line)
}

func TestServerIgnoresOtherLines(t *testing.T) {
	req := require.New(t)
	s := &Server{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	client, server := net.Pipe()
	defer client.Close()
	go s.handle(server)

	_, err := client.Write([]byte("HELLO\nPING\n"))
	req.NoError(err)

	// only the PING line is answered
	line, err := bufio.NewReader(client).ReadString('\n')
	req.NoError(err)
	req.Equal("PONG\n", line)
}

func TestClientRejectsNonIPv4Address(t *testing.T) {
	for _, addr := range []string{"localhost", "::1", "not-an-ip", ""} {
		_, err := NewClient(addr, DefaultPort, time.Second)
		require.Error(t, err, "address %q", addr)
	}
}

func TestClientMeasuresRoundTrip(t *testing.T) {
	req := require.New(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		if strings.TrimSpace(line) == "PING" {
			_, _ = conn.Write([]byte("PONG\n"))
		}
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	client, err := NewClient("127.0.0.1", port, time.Second)
	req.NoError(err)

	rtt, err := client.Ping()
	req.NoError(err)
	req.Greater(rtt, time.Duration(0))
}
