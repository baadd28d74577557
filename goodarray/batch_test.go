package goodarray_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/modcomb/goodarray"
)

func TestCountBatch(t *testing.T) {
	r := rand.New(rand.NewSource(0))

	queries := make([]goodarray.Query, 1024)
	for i := range queries {
		n := 1 + r.Intn(params.MaxN())
		queries[i] = goodarray.Query{N: n, M: 1 + r.Intn(params.MaxN()), K: r.Intn(n)}
	}

	countOut, err := counter.CountBatch(queries)
	assert.NoError(t, err)
	assert.Equal(t, len(queries), len(countOut))

	t.Run("MatchesSingle", func(t *testing.T) {
		for i, query := range queries {
			count, err := counter.Count(query.N, query.M, query.K)
			assert.NoError(t, err)
			assert.Equal(t, count, countOut[i])
		}
	})

	t.Run("Parallel", func(t *testing.T) {
		countParallelOut, err := counter.CountBatchParallel(queries)
		assert.NoError(t, err)
		assert.Equal(t, countOut, countParallelOut)
	})

	t.Run("Empty", func(t *testing.T) {
		countEmptyOut, err := counter.CountBatch(nil)
		assert.NoError(t, err)
		assert.Empty(t, countEmptyOut)

		countEmptyOut, err = counter.CountBatchParallel(nil)
		assert.NoError(t, err)
		assert.Empty(t, countEmptyOut)
	})

	t.Run("Invalid", func(t *testing.T) {
		badQueries := append([]goodarray.Query{}, queries...)
		badQueries[77].K = badQueries[77].N

		countBadOut, err := counter.CountBatch(badQueries)
		assert.ErrorIs(t, err, goodarray.ErrInvalidQuery)
		assert.ErrorContains(t, err, "query 77")
		assert.Nil(t, countBadOut)

		countBadOut, err = counter.CountBatchParallel(badQueries)
		assert.ErrorIs(t, err, goodarray.ErrInvalidQuery)
		assert.Nil(t, countBadOut)
	})
}

func TestCounterConcurrent(t *testing.T) {
	want, err := counter.Count(31337, 42, 1000)
	assert.NoError(t, err)

	countOut := make([]uint64, 16)

	var wg sync.WaitGroup
	wg.Add(len(countOut))

	for i := 0; i < len(countOut); i++ {
		go func(i int) {
			defer wg.Done()
			countOut[i], _ = counter.Count(31337, 42, 1000)
		}(i)
	}
	wg.Wait()

	for i := range countOut {
		assert.Equal(t, want, countOut[i])
	}
}
