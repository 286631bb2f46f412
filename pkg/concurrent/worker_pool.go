package concurrent

import (
	"runtime"
	"sync"
)

type JobFunc[T any, G any] func(job T) G

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

type indexedJob[T any] struct {
	index   int
	payload T
}

type indexedResult[G any] struct {
	index  int
	result G
}

// Map fans jobs out over numWorkers goroutines and returns results in
// submission order. Safe for any pure jobFunc.
func Map[T any, G any](jobs []T, numWorkers int, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[indexedJob[T], indexedResult[G]](numWorkers, len(jobs))
	wp.Start(func(job indexedJob[T]) indexedResult[G] {
		return indexedResult[G]{index: job.index, result: jobFunc(job.payload)}
	})

	go func() {
		for i, job := range jobs {
			wp.AddJob(indexedJob[T]{index: i, payload: job})
		}
		wp.Close()
		wp.Wait()
	}()

	out := make([]G, len(jobs))
	for res := range wp.CollectResults() {
		out[res.index] = res.result
	}
	return out
}
