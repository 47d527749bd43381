package db

import "respkv/resp"

// LPush prepends values (in argument order, so the last argument ends up
// at the head) to the list at key, creating it if absent, and returns
// the resulting length.
func (s *Store) LPush(key string, values []resp.Frame) (int64, error) {
	e, err := s.getOrCreate(key, kindList)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, v := range values {
		e.list.PushFront(v)
	}
	return int64(e.list.Len()), nil
}

// RPush appends values to the list at key, creating it if absent, and
// returns the resulting length.
func (s *Store) RPush(key string, values []resp.Frame) (int64, error) {
	e, err := s.getOrCreate(key, kindList)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, v := range values {
		e.list.PushBack(v)
	}
	return int64(e.list.Len()), nil
}

// LPop removes and returns the head of the list at key.
func (s *Store) LPop(key string) (val resp.Frame, found bool, err error) {
	e, ok := s.getEntry(key)
	if !ok {
		return nil, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindList {
		return nil, false, ErrWrongType
	}
	front := e.list.Front()
	if front == nil {
		return nil, false, nil
	}
	e.list.Remove(front)
	return front.Value.(resp.Frame), true, nil
}

// RPop removes and returns the tail of the list at key.
func (s *Store) RPop(key string) (val resp.Frame, found bool, err error) {
	e, ok := s.getEntry(key)
	if !ok {
		return nil, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindList {
		return nil, false, ErrWrongType
	}
	back := e.list.Back()
	if back == nil {
		return nil, false, nil
	}
	e.list.Remove(back)
	return back.Value.(resp.Frame), true, nil
}

// LLen returns the length of the list at key (0 if absent).
func (s *Store) LLen(key string) (int64, error) {
	e, ok := s.getEntry(key)
	if !ok {
		return 0, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindList {
		return 0, ErrWrongType
	}
	return int64(e.list.Len()), nil
}

// LRange returns the elements between start and stop inclusive, using
// Redis's negative-index convention (-1 is the last element).
func (s *Store) LRange(key string, start, stop int64) ([]resp.Frame, error) {
	e, ok := s.getEntry(key)
	if !ok {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != kindList {
		return nil, ErrWrongType
	}

	n := int64(e.list.Len())
	start, stop = normalizeRange(start, stop, n)
	if n == 0 || start > stop {
		return nil, nil
	}

	out := make([]resp.Frame, 0, stop-start+1)
	idx := int64(0)
	for el := e.list.Front(); el != nil; el = el.Next() {
		if idx >= start && idx <= stop {
			out = append(out, el.Value.(resp.Frame))
		}
		idx++
	}
	return out, nil
}

func normalizeRange(start, stop, n int64) (int64, int64) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	return start, stop
}
