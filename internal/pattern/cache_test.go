package pattern

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGet(t *testing.T) {
	p := newStubProvider()
	c := NewCache(p)

	first, hit, err := c.Get("h:mm a", "en")
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := c.Get("h:mm a", "en")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Same(t, first, second)
	assert.Equal(t, 1, p.calls)

	other, hit, err := c.Get("h:mm a", "de")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, c.Len())
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	p := newStubProvider()
	p.err = errors.New("boom")
	c := NewCache(p)

	_, _, err := c.Get("h a", "en")
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	p.err = nil
	m, hit, err := c.Get("h a", "en")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotNil(t, m)
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(newStubProvider())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, _, err := c.Get("HH:mm", "en")
			if assert.NoError(t, err) {
				_, ok := m.Extract("10:20")
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
}
