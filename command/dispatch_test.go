package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"respkv/db"
	"respkv/resp"
)

func bulkCmd(parts ...string) resp.Frame {
	arr := make(resp.Array, len(parts))
	for i, p := range parts {
		arr[i] = resp.BulkString(p)
	}
	return arr
}

func TestDispatchPing(t *testing.T) {
	store := db.New()
	reply := Dispatch(store, bulkCmd("PING"))
	assert.Equal(t, resp.SimpleString("PONG"), reply)

	reply = Dispatch(store, bulkCmd("ping", "hello"))
	assert.Equal(t, resp.BulkString("hello"), reply)
}

func TestDispatchSetGet(t *testing.T) {
	store := db.New()
	reply := Dispatch(store, bulkCmd("SET", "k", "v"))
	assert.Equal(t, resp.SimpleString("OK"), reply)

	reply = Dispatch(store, bulkCmd("GET", "k"))
	assert.Equal(t, resp.BulkString("v"), reply)

	reply = Dispatch(store, bulkCmd("GET", "missing"))
	assert.Equal(t, resp.NullBulkString{}, reply)
}

func TestDispatchUnknownCommand(t *testing.T) {
	store := db.New()
	reply := Dispatch(store, bulkCmd("NOSUCHCOMMAND"))
	errReply, ok := reply.(resp.SimpleError)
	require.True(t, ok)
	assert.Contains(t, string(errReply), "unknown command")
}

func TestDispatchWrongArity(t *testing.T) {
	store := db.New()
	reply := Dispatch(store, bulkCmd("SET", "k"))
	errReply, ok := reply.(resp.SimpleError)
	require.True(t, ok)
	assert.Contains(t, string(errReply), "wrong number of arguments")
}

func TestDispatchWrongType(t *testing.T) {
	store := db.New()
	Dispatch(store, bulkCmd("SET", "k", "v"))

	reply := Dispatch(store, bulkCmd("LPUSH", "k", "v"))
	errReply, ok := reply.(resp.SimpleError)
	require.True(t, ok)
	assert.Contains(t, string(errReply), "WRONGTYPE")
}

func TestDispatchHashAndList(t *testing.T) {
	store := db.New()
	Dispatch(store, bulkCmd("HSET", "h", "f1", "v1", "f2", "v2"))

	reply := Dispatch(store, bulkCmd("HGETALL", "h"))
	m, ok := reply.(resp.Map)
	require.True(t, ok)
	assert.Equal(t, resp.BulkString("v1"), m["f1"])
	assert.Equal(t, resp.BulkString("v2"), m["f2"])

	Dispatch(store, bulkCmd("RPUSH", "l", "a", "b", "c"))
	reply = Dispatch(store, bulkCmd("LRANGE", "l", "0", "-1"))
	arr, ok := reply.(resp.Array)
	require.True(t, ok)
	require.Len(t, arr, 3)
	assert.Equal(t, resp.BulkString("a"), arr[0])
}

func TestDispatchNotAnArray(t *testing.T) {
	store := db.New()
	reply := Dispatch(store, resp.SimpleString("PING"))
	errReply, ok := reply.(resp.SimpleError)
	require.True(t, ok)
	assert.Contains(t, string(errReply), "protocol error")
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, IsShutdown([]string{"shutdown"}))
	assert.True(t, IsShutdown([]string{"SHUTDOWN"}))
	assert.False(t, IsShutdown([]string{"PING"}))
	assert.False(t, IsShutdown(nil))
}
