package command

import (
	"respkv/db"
	"respkv/resp"
)

func init() {
	register("HSET", cmdHSet)
	register("HGET", cmdHGet)
	register("HDEL", cmdHDel)
	register("HGETALL", cmdHGetAll)
	register("HEXISTS", cmdHExists)
}

func cmdHSet(store *db.Store, args []string) resp.Frame {
	if len(args) < 4 || len(args)%2 != 0 {
		return wrongArity("hset")
	}
	fields := make(map[string]resp.Frame, (len(args)-2)/2)
	for i := 2; i < len(args); i += 2 {
		fields[args[i]] = resp.BulkString(args[i+1])
	}
	added, err := store.HSet(args[1], fields)
	if err != nil {
		return fromStoreErr(err, nil)
	}
	return resp.Integer(added)
}

func cmdHGet(store *db.Store, args []string) resp.Frame {
	if len(args) != 3 {
		return wrongArity("hget")
	}
	val, found, err := store.HGet(args[1], args[2])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	if !found {
		return resp.NullBulkString{}
	}
	return val
}

func cmdHDel(store *db.Store, args []string) resp.Frame {
	if len(args) < 3 {
		return wrongArity("hdel")
	}
	n, err := store.HDel(args[1], args[2:])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	return resp.Integer(n)
}

func cmdHGetAll(store *db.Store, args []string) resp.Frame {
	if len(args) != 2 {
		return wrongArity("hgetall")
	}
	fields, err := store.HGetAll(args[1])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	out := make(resp.Map, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func cmdHExists(store *db.Store, args []string) resp.Frame {
	if len(args) != 3 {
		return wrongArity("hexists")
	}
	exists, err := store.HExists(args[1], args[2])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	if exists {
		return resp.Integer(1)
	}
	return resp.Integer(0)
}
