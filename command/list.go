package command

import (
	"respkv/db"
	"respkv/resp"
)

func init() {
	register("LPUSH", cmdLPush)
	register("RPUSH", cmdRPush)
	register("LPOP", cmdLPop)
	register("RPOP", cmdRPop)
	register("LLEN", cmdLLen)
	register("LRANGE", cmdLRange)
}

func bulkArgs(args []string) []resp.Frame {
	out := make([]resp.Frame, len(args))
	for i, a := range args {
		out[i] = resp.BulkString(a)
	}
	return out
}

func cmdLPush(store *db.Store, args []string) resp.Frame {
	if len(args) < 3 {
		return wrongArity("lpush")
	}
	n, err := store.LPush(args[1], bulkArgs(args[2:]))
	if err != nil {
		return fromStoreErr(err, nil)
	}
	return resp.Integer(n)
}

func cmdRPush(store *db.Store, args []string) resp.Frame {
	if len(args) < 3 {
		return wrongArity("rpush")
	}
	n, err := store.RPush(args[1], bulkArgs(args[2:]))
	if err != nil {
		return fromStoreErr(err, nil)
	}
	return resp.Integer(n)
}

func cmdLPop(store *db.Store, args []string) resp.Frame {
	if len(args) != 2 {
		return wrongArity("lpop")
	}
	val, found, err := store.LPop(args[1])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	if !found {
		return resp.NullBulkString{}
	}
	return val
}

func cmdRPop(store *db.Store, args []string) resp.Frame {
	if len(args) != 2 {
		return wrongArity("rpop")
	}
	val, found, err := store.RPop(args[1])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	if !found {
		return resp.NullBulkString{}
	}
	return val
}

func cmdLLen(store *db.Store, args []string) resp.Frame {
	if len(args) != 2 {
		return wrongArity("llen")
	}
	n, err := store.LLen(args[1])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	return resp.Integer(n)
}

func cmdLRange(store *db.Store, args []string) resp.Frame {
	if len(args) != 4 {
		return wrongArity("lrange")
	}
	start, ok := parseInt(args[2])
	if !ok {
		return errReply("ERR value is not an integer or out of range")
	}
	stop, ok := parseInt(args[3])
	if !ok {
		return errReply("ERR value is not an integer or out of range")
	}
	vals, err := store.LRange(args[1], start, stop)
	if err != nil {
		return fromStoreErr(err, nil)
	}
	out := make(resp.Array, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
