// Package db implements the Backend collaborator named in the codec's
// bounding interfaces: a keyspace of string, hash, and list values with
// point-atomic operations per key, backed by a sharded concurrent map.
package db

import (
	"container/list"
	"errors"
	"sync"

	"respkv/resp"
)

// ErrWrongType is returned when an operation expects one value kind
// (string/hash/list) but the key already holds another.
var ErrWrongType = errors.New("db: wrong type")

type entryKind int

const (
	kindString entryKind = iota
	kindHash
	kindList
)

// entry holds whichever single value kind a key currently maps to. Its
// own mutex makes composite operations (HSET of several fields, LPUSH of
// several values) atomic with respect to other operations on the same
// key, independent of the shard lock that only guards the keyspace
// itself.
type entry struct {
	mu   sync.Mutex
	kind entryKind
	str  resp.Frame
	hash map[string]resp.Frame
	list *list.List
}
