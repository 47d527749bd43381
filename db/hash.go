package db

import "respkv/resp"

// HSet sets the given fields on the hash at key, creating the key if
// absent, and returns how many fields were newly added (as opposed to
// overwritten).
func (s *Store) HSet(key string, fields map[string]resp.Frame) (int64, error) {
	e, err := s.getOrCreate(key, kindHash)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var added int64
	for field, val := range fields {
		if _, exists := e.hash[field]; !exists {
			added++
		}
		e.hash[field] = val
	}
	return added, nil
}

// HGet returns the value of a single hash field.
func (s *Store) HGet(key, field string) (val resp.Frame, found bool, err error) {
	e, ok := s.getEntry(key)
	if !ok {
		return nil, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindHash {
		return nil, false, ErrWrongType
	}
	val, found = e.hash[field]
	return val, found, nil
}

// HGetAll returns a snapshot copy of every field in the hash at key.
func (s *Store) HGetAll(key string) (map[string]resp.Frame, error) {
	e, ok := s.getEntry(key)
	if !ok {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindHash {
		return nil, ErrWrongType
	}
	out := make(map[string]resp.Frame, len(e.hash))
	for field, val := range e.hash {
		out[field] = val
	}
	return out, nil
}

// HDel removes the given fields and returns how many existed.
func (s *Store) HDel(key string, fields []string) (int64, error) {
	e, ok := s.getEntry(key)
	if !ok {
		return 0, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindHash {
		return 0, ErrWrongType
	}
	var n int64
	for _, field := range fields {
		if _, exists := e.hash[field]; exists {
			delete(e.hash, field)
			n++
		}
	}
	return n, nil
}

// HExists reports whether field is present in the hash at key.
func (s *Store) HExists(key, field string) (bool, error) {
	e, ok := s.getEntry(key)
	if !ok {
		return false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindHash {
		return false, ErrWrongType
	}
	_, exists := e.hash[field]
	return exists, nil
}
