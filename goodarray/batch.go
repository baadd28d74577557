package goodarray

import (
	"fmt"
	"runtime"
	"sync"
)

// Query is a single good array counting query.
type Query struct {
	// N is the length of the sequence.
	N int
	// M is the alphabet size.
	M int
	// K is the exact number of adjacent equal pairs.
	K int
}

// CountBatch counts every query, preserving order.
//
// The whole batch is validated up front. On any invalid query it returns
// a nil slice and an error naming the first offending index, and no counts
// are produced.
func (c *Counter) CountBatch(queries []Query) ([]uint64, error) {
	if err := c.validateBatch(queries); err != nil {
		return nil, err
	}

	countOut := make([]uint64, len(queries))
	for i, query := range queries {
		countOut[i] = c.count(query.N, query.M, query.K)
	}
	return countOut, nil
}

// CountBatchParallel counts every query in parallel, preserving order.
func (c *Counter) CountBatchParallel(queries []Query) ([]uint64, error) {
	if err := c.validateBatch(queries); err != nil {
		return nil, err
	}

	workSize := min(runtime.NumCPU(), len(queries))

	countJobs := make(chan int)
	go func() {
		defer close(countJobs)
		for i := 0; i < len(queries); i++ {
			countJobs <- i
		}
	}()

	countOut := make([]uint64, len(queries))

	var wg sync.WaitGroup
	wg.Add(workSize)

	for i := 0; i < workSize; i++ {
		go func() {
			defer wg.Done()

			for j := range countJobs {
				countOut[j] = c.count(queries[j].N, queries[j].M, queries[j].K)
			}
		}()
	}
	wg.Wait()

	return countOut, nil
}

func (c *Counter) validateBatch(queries []Query) error {
	for i, query := range queries {
		if err := c.validate(query.N, query.M, query.K); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
	}
	return nil
}
