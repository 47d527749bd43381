// Package server implements the two collaborators the codec is bounded
// by on the network side: the TCP accept loop and the per-connection
// framing driver. Both are intentionally thin — all protocol semantics
// live in resp, all command semantics in command.
package server

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"respkv/db"
)

// Server accepts RESP connections on Addr and dispatches commands
// against Store until Shutdown is called or a connection sends SHUTDOWN.
type Server struct {
	Addr  string
	Store *db.Store
	Log   *zap.Logger

	listener net.Listener

	closing   chan struct{}
	closeOnce sync.Once

	group   *errgroup.Group
	conns   map[net.Conn]struct{}
	connsMu sync.Mutex
}

// New returns a Server ready to Start. A nil logger is replaced with
// zap.NewNop() so callers never need a nil check.
func New(addr string, store *db.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Addr:    addr,
		Store:   store,
		Log:     log,
		closing: make(chan struct{}),
		conns:   make(map[net.Conn]struct{}),
	}
}

// Start opens the listener and accepts connections until Shutdown closes
// it. It blocks; run it in its own goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.Addr)
	}
	s.listener = listener
	s.Log.Info("listening", zap.String("addr", s.Addr))

	g := &errgroup.Group{}
	s.group = g

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-s.closing:
				return g.Wait()
			default:
			}
			s.Log.Warn("accept error", zap.Error(err))
			continue
		}
		s.trackConn(conn)
		g.Go(func() error {
			s.handleConnection(conn)
			return nil
		})
	}
}

// Shutdown stops accepting connections, closes every tracked connection
// to unblock their goroutines, and waits for them to drain or for ctx to
// expire, whichever comes first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.closeOnce.Do(func() {
		close(s.closing)
		if s.listener != nil {
			_ = s.listener.Close()
		}

		s.connsMu.Lock()
		for c := range s.conns {
			_ = c.Close()
		}
		s.connsMu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		if s.group != nil {
			_ = s.group.Wait()
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) trackConn(conn net.Conn) {
	s.connsMu.Lock()
	s.conns[conn] = struct{}{}
	s.connsMu.Unlock()
}

func (s *Server) untrackConn(conn net.Conn) {
	s.connsMu.Lock()
	delete(s.conns, conn)
	s.connsMu.Unlock()
}

// triggerShutdown is called from a connection goroutine after it has
// already written the SHUTDOWN reply; it must not block that goroutine,
// so the actual shutdown runs on its own goroutine with a bounded
// timeout.
func (s *Server) triggerShutdown() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	}()
}
