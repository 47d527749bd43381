package server

import (
	"errors"
	"io"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"respkv/command"
	"respkv/resp"
)

// readChunk is how much we ask the kernel for on each Read call; it has
// no bearing on protocol limits, since the accumulation buffer grows
// without bound to fit whatever frame is in flight.
const readChunk = 4096

// handleConnection is the framing driver bounded by §6: it repeatedly
// calls resp.Decode on a growing buffer, handing each complete frame to
// the dispatcher and writing back the reply, until the connection closes
// or a decode error that isn't "incomplete" occurs.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	defer s.untrackConn(conn)

	log := s.Log.With(
		zap.String("conn_id", uuid.NewString()),
		zap.Stringer("remote", conn.RemoteAddr()),
	)

	var buf []byte
	readBuf := make([]byte, readChunk)

	for {
		frame, consumed, err := resp.Decode(buf)
		switch {
		case err == nil:
			buf = buf[consumed:]
			if !s.respond(conn, frame, log) {
				return
			}
			continue // buf may already hold another pipelined frame

		case errors.Is(err, resp.ErrIncompleteFrame):
			n, rerr := conn.Read(readBuf)
			if rerr != nil {
				if rerr != io.EOF {
					log.Debug("connection read error", zap.Error(rerr))
				}
				return
			}
			buf = append(buf, readBuf[:n]...)

		default:
			log.Warn("protocol violation", zap.Error(err))
			_, _ = conn.Write(resp.Encode(resp.SimpleError("ERR protocol error: " + err.Error())))
			return
		}
	}
}

// respond dispatches frame and writes its reply. It returns false when
// the connection should be closed: either the write failed, or the
// command was SHUTDOWN and the server is now draining.
func (s *Server) respond(conn net.Conn, frame resp.Frame, log *zap.Logger) bool {
	args, argErr := command.Args(frame)
	reply := command.Dispatch(s.Store, frame)

	if _, err := conn.Write(resp.Encode(reply)); err != nil {
		log.Debug("connection write error", zap.Error(err))
		return false
	}

	if argErr == nil && command.IsShutdown(args) {
		log.Info("shutdown requested")
		s.triggerShutdown()
		return false
	}
	return true
}
