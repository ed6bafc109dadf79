package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStyleStorage(t *testing.T) {
	store := NewMemoryStyleStorage()

	style, err := store.GetUserStyle(1)
	require.NoError(t, err)
	assert.Empty(t, style)

	require.NoError(t, store.SetUserStyle(1, "modern"))
	require.NoError(t, store.SetUserStyle(2, "vintage"))
	require.NoError(t, store.SetUserStyle(1, "minimal"))

	style, _ = store.GetUserStyle(1)
	assert.Equal(t, "minimal", style)
	style, _ = store.GetUserStyle(2)
	assert.Equal(t, "vintage", style)
	style, _ = store.GetUserStyle(3)
	assert.Empty(t, style)

	assert.NoError(t, store.Close())
}

func TestMemoryStyleStorage_Concurrent(t *testing.T) {
	store := NewMemoryStyleStorage()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(userId int64) {
			defer wg.Done()
			style := fmt.Sprintf("style-%d", userId)
			for j := 0; j < 100; j++ {
				_ = store.SetUserStyle(userId, style)
				got, _ := store.GetUserStyle(userId)
				assert.Equal(t, style, got)
			}
		}(i)
	}
	wg.Wait()
}
