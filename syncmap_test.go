package banbridge

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	sm := NewSyncMap[string, int]()

	// Test Set and Get
	sm.Set("key1", 1)
	val, ok := sm.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	// Test size
	sm.Set("key2", 2)
	assert.Len(t, sm.Keys(), 2)

	// Test Keys
	keys := sm.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"key1", "key2"}, keys)

	// Test Del
	sm.Del("key1")
	_, ok = sm.Get("key1")
	assert.False(t, ok)
	assert.Len(t, sm.Keys(), 1)
}

func TestSyncMap_Concurrent(t *testing.T) {
	sm := NewSyncMap[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sm.Set(i, i*i)
			sm.Get(i)
		}(i)
	}
	wg.Wait()

	assert.Len(t, sm.Keys(), 50)
}
