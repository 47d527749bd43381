package db

import (
	"container/list"
	"hash/fnv"
	"sync"

	"respkv/resp"
)

// shardCount is a fixed power of two; a fixed count keeps key-to-shard
// hashing stable without a resize path, which this in-memory keyspace
// has no need for.
const shardCount = 32

type shard struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// Store is the sharded concurrent keyspace described by the Backend
// collaborator interface. Every exported method is point-atomic for the
// key(s) it touches; there is no global lock and no cross-key ordering
// guarantee.
type Store struct {
	shards [shardCount]*shard
}

// New returns an empty Store.
func New() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{entries: make(map[string]*entry)}
	}
	return s
}

func (s *Store) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%shardCount]
}

func (s *Store) getEntry(key string) (*entry, bool) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	e, ok := sh.entries[key]
	sh.mu.RUnlock()
	return e, ok
}

// getOrCreate returns the entry for key, creating an empty one of kind
// if absent. If the key already holds a different kind, it reports
// ErrWrongType.
func (s *Store) getOrCreate(key string, kind entryKind) (*entry, error) {
	sh := s.shardFor(key)

	sh.mu.Lock()
	e, ok := sh.entries[key]
	if !ok {
		e = &entry{kind: kind}
		switch kind {
		case kindHash:
			e.hash = make(map[string]resp.Frame)
		case kindList:
			e.list = list.New()
		}
		sh.entries[key] = e
	}
	sh.mu.Unlock()

	if ok && e.kind != kind {
		return nil, ErrWrongType
	}
	return e, nil
}

// Del removes the given keys and returns how many existed.
func (s *Store) Del(keys ...string) int64 {
	var n int64
	for _, key := range keys {
		sh := s.shardFor(key)
		sh.mu.Lock()
		if _, ok := sh.entries[key]; ok {
			delete(sh.entries, key)
			n++
		}
		sh.mu.Unlock()
	}
	return n
}

// Exists returns how many of the given keys are present.
func (s *Store) Exists(keys ...string) int64 {
	var n int64
	for _, key := range keys {
		if _, ok := s.getEntry(key); ok {
			n++
		}
	}
	return n
}
