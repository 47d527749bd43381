package db

import "respkv/resp"

// Set stores val under key as a string value, replacing whatever kind
// the key previously held. The old entry is replaced rather than
// rewritten in place, so an operation already holding it never sees its
// kind change underneath it.
func (s *Store) Set(key string, val resp.Frame) {
	sh := s.shardFor(key)

	sh.mu.Lock()
	sh.entries[key] = &entry{kind: kindString, str: val}
	sh.mu.Unlock()
}

// Get returns the string value at key. found is false if the key is
// absent; err is ErrWrongType if it holds a hash or list.
func (s *Store) Get(key string) (val resp.Frame, found bool, err error) {
	e, ok := s.getEntry(key)
	if !ok {
		return nil, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindString {
		return nil, false, ErrWrongType
	}
	return e.str, true, nil
}
