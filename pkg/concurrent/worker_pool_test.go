package concurrent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapPreservesSubmissionOrder(t *testing.T) {
	jobs := make([]int, 1000)
	for i := range jobs {
		jobs[i] = i
	}

	results := Map(jobs, 8, func(n int) int { return n * n })
	require.Len(t, results, len(jobs))
	for i, res := range results {
		require.Equal(t, i*i, res)
	}
}

func TestMapEmptyInput(t *testing.T) {
	require.Empty(t, Map(nil, 4, func(n int) int { return n }))
}

func TestWorkerPoolCollectsAllResults(t *testing.T) {
	wp := NewWorkerPool[int, int](4, 100)
	wp.Start(func(n int) int { return n + 1 })

	go func() {
		for i := 0; i < 100; i++ {
			wp.AddJob(i)
		}
		wp.Close()
		wp.Wait()
	}()

	sum := 0
	count := 0
	for res := range wp.CollectResults() {
		sum += res
		count++
	}
	require.Equal(t, 100, count)
	require.Equal(t, 5050, sum)
}
