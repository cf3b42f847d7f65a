package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortableAndUnique(t *testing.T) {
	a := New()
	b := New()

	assert.Len(t, a.String(), 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a.String(), b.String(), "monotonic within a process")
}

func TestNewConcurrent(t *testing.T) {
	const n = 200

	var wg sync.WaitGroup
	ids := make([]ID, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = New()
		}(i)
	}
	wg.Wait()

	seen := make(map[ID]struct{}, n)
	for _, id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestParse(t *testing.T) {
	id := New()

	got, err := Parse(" " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "not-a-ulid", "0000000000000000000000000!"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalid, bad)
	}
}

func TestTime(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Millisecond)
	id := New()
	after := time.Now().UTC()

	ts := id.Time()
	assert.False(t, ts.Before(before), "timestamp not before creation")
	assert.False(t, ts.After(after), "timestamp not after creation")

	assert.True(t, ID("garbage").Time().IsZero())
	assert.True(t, Zero.IsZero())
}
