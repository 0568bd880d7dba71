package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySequenceConcurrentFirstMint(t *testing.T) {
	repo := NewMemorySequenceRepository()
	ctx := context.Background()

	// Every caller races the very first mint of the counter; each must
	// still get a distinct value and none may fail.
	const callers = 32
	values := make(chan uint64, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Next(ctx, "patient")
			assert.NoError(t, err)
			values <- v
		}()
	}
	wg.Wait()
	close(values)

	seen := make(map[uint64]struct{}, callers)
	for v := range values {
		_, dup := seen[v]
		assert.False(t, dup, "value %d handed out twice", v)
		seen[v] = struct{}{}
	}
	require.Len(t, seen, callers)

	next, err := repo.Next(ctx, "patient")
	require.NoError(t, err)
	assert.Equal(t, uint64(callers+1), next)
}

func TestMemorySequenceCountersAreIndependent(t *testing.T) {
	repo := NewMemorySequenceRepository()
	ctx := context.Background()

	first, err := repo.Next(ctx, "patient")
	require.NoError(t, err)
	other, err := repo.Next(ctx, "admission")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(1), other)
}
