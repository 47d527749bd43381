package command

import (
	"respkv/db"
	"respkv/resp"
)

func init() {
	register("SET", cmdSet)
	register("GET", cmdGet)
	register("DEL", cmdDel)
	register("EXISTS", cmdExists)
}

func cmdSet(store *db.Store, args []string) resp.Frame {
	if len(args) != 3 {
		return wrongArity("set")
	}
	store.Set(args[1], resp.BulkString(args[2]))
	return resp.SimpleString("OK")
}

func cmdGet(store *db.Store, args []string) resp.Frame {
	if len(args) != 2 {
		return wrongArity("get")
	}
	val, found, err := store.Get(args[1])
	if err != nil {
		return fromStoreErr(err, nil)
	}
	if !found {
		return resp.NullBulkString{}
	}
	return val
}

func cmdDel(store *db.Store, args []string) resp.Frame {
	if len(args) < 2 {
		return wrongArity("del")
	}
	return resp.Integer(store.Del(args[1:]...))
}

func cmdExists(store *db.Store, args []string) resp.Frame {
	if len(args) < 2 {
		return wrongArity("exists")
	}
	return resp.Integer(store.Exists(args[1:]...))
}
