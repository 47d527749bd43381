package db

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"respkv/resp"
)

func TestStringSetGet(t *testing.T) {
	s := New()
	s.Set("k", resp.BulkString("v"))

	val, found, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, resp.BulkString("v"), val)

	_, found, err = s.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetOverwritesOtherKind(t *testing.T) {
	s := New()
	_, err := s.LPush("k", []resp.Frame{resp.BulkString("a")})
	require.NoError(t, err)

	s.Set("k", resp.BulkString("v"))
	val, found, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, resp.BulkString("v"), val)
}

func TestWrongType(t *testing.T) {
	s := New()
	s.Set("k", resp.BulkString("v"))

	_, err := s.HSet("k", map[string]resp.Frame{"f": resp.BulkString("x")})
	assert.ErrorIs(t, err, ErrWrongType)

	_, _, err = s.LPop("k")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestHashOperations(t *testing.T) {
	s := New()
	added, err := s.HSet("h", map[string]resp.Frame{"f1": resp.BulkString("v1")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, added)

	added, err = s.HSet("h", map[string]resp.Frame{"f1": resp.BulkString("v2"), "f2": resp.BulkString("v3")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, added)

	val, found, err := s.HGet("h", "f1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, resp.BulkString("v2"), val)

	all, err := s.HGetAll("h")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err := s.HDel("h", []string{"f1", "nope"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	exists, err := s.HExists("h", "f2")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListOperations(t *testing.T) {
	s := New()
	n, err := s.RPush("l", []resp.Frame{resp.BulkString("a"), resp.BulkString("b")})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = s.LPush("l", []resp.Frame{resp.BulkString("z")})
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	length, err := s.LLen("l")
	require.NoError(t, err)
	assert.EqualValues(t, 3, length)

	vals, err := s.LRange("l", 0, -1)
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, resp.BulkString("z"), vals[0])
	assert.Equal(t, resp.BulkString("a"), vals[1])
	assert.Equal(t, resp.BulkString("b"), vals[2])

	head, found, err := s.LPop("l")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, resp.BulkString("z"), head)

	tail, found, err := s.RPop("l")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, resp.BulkString("b"), tail)
}

func TestDelExists(t *testing.T) {
	s := New()
	s.Set("a", resp.BulkString("1"))
	s.Set("b", resp.BulkString("2"))

	assert.EqualValues(t, 2, s.Exists("a", "b", "missing"))
	assert.EqualValues(t, 2, s.Del("a", "b", "missing"))
	assert.EqualValues(t, 0, s.Exists("a", "b"))
}

// TestConcurrentHSet exercises the per-entry mutex: many goroutines add
// distinct fields to the same hash key concurrently, and the final
// field count must match exactly with no lost updates.
func TestConcurrentHSet(t *testing.T) {
	s := New()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			field := string(rune('a' + i%26))
			_, _ = s.HSet("h", map[string]resp.Frame{field + string(rune(i)): resp.Integer(i)})
		}(i)
	}
	wg.Wait()

	all, err := s.HGetAll("h")
	require.NoError(t, err)
	assert.Len(t, all, n)
}
