package command

import (
	"strings"

	"respkv/db"
	"respkv/resp"
)

func init() {
	register("PING", cmdPing)
	register("ECHO", cmdEcho)
	register("COMMAND", cmdCommand)
	register("SHUTDOWN", cmdShutdown)
}

func cmdPing(_ *db.Store, args []string) resp.Frame {
	if len(args) > 2 {
		return wrongArity("ping")
	}
	if len(args) == 2 {
		return resp.BulkString(args[1])
	}
	return resp.SimpleString("PONG")
}

func cmdEcho(_ *db.Store, args []string) resp.Frame {
	if len(args) != 2 {
		return wrongArity("echo")
	}
	return resp.BulkString(args[1])
}

// cmdCommand answers the introspection call some clients issue on
// connect; this server has no command metadata to offer, so it reports
// an empty set rather than erroring the handshake.
func cmdCommand(_ *db.Store, _ []string) resp.Frame {
	return resp.Array{}
}

// cmdShutdown only produces the reply; actually closing the listener and
// draining connections is the Server's job (see server/conn.go), which
// checks the command name only after the reply is written so the client
// gets its OK before the connection goes away.
func cmdShutdown(_ *db.Store, _ []string) resp.Frame {
	return resp.SimpleString("OK")
}

// IsShutdown reports whether args names the SHUTDOWN command, so the
// framing driver can trigger graceful shutdown after writing the reply.
func IsShutdown(args []string) bool {
	return len(args) > 0 && strings.EqualFold(args[0], "SHUTDOWN")
}
