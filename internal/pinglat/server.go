package pinglat

import (
	"bufio"
	"context"
	"fmt"
	"net"

	"log/slog"
)

// Port bounds for the listening side. The accepted range is
// [MinPort, MaxPort).
const (
	MinPort     = 10000
	MaxPort     = 65535
	DefaultPort = 23456
)

// ValidatePort checks that p fits the accepted listening range
func ValidatePort(p int) error {
	if p < MinPort || p >= MaxPort {
		return fmt.Errorf("port %d out of range [%d, %d)", p, MinPort, MaxPort)
	}
	return nil
}

// Server answers PING lines with PONG. It carries no state between
// connections and shares nothing with the chat engine.
type Server struct {
	log  *slog.Logger
	addr string
}

// NewServer builds a responder listening on the given port
func NewServer(logger *slog.Logger, port int) *Server {
	return &Server{log: logger, addr: fmt.Sprintf(":%d", port)}
}

// Listen accepts connections until ctx is cancelled
func (s *Server) Listen(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	s.log.Info("pinglat.listening", "addr", s.addr)
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	s.log.Debug("pinglat.client.connected", "remote", conn.RemoteAddr().String())

	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		if sc.Text() != "PING" {
			continue
		}
		if _, err := fmt.Fprintln(conn, "PONG"); err != nil {
			return
		}
	}
	s.log.Debug("pinglat.client.disconnected", "remote", conn.RemoteAddr().String())
}
