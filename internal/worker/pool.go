// Package worker provides a worker pool for replaying persisted games.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/storage"
)

// WorkItem represents a stored game to be rebuilt.
type WorkItem struct {
	Record storage.Record
	Index  int // Original index for tracking
}

// ProcessResult represents the rebuilt game.
type ProcessResult struct {
	ID     string
	Index  int
	Board  *engine.Board // nil when Error is set
	Layout engine.Layout
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Replay is the default ProcessFunc: it rebuilds the board from the record.
func Replay(item WorkItem) ProcessResult {
	res := ProcessResult{ID: item.Record.ID, Index: item.Index}
	res.Layout, res.Error = item.Record.StartingLayout()
	if res.Error != nil {
		return res
	}
	res.Board, res.Error = item.Record.Replay()
	return res
}

// Pool manages a pool of workers for parallel replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. A nil processFunc means Replay.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	if processFunc == nil {
		processFunc = Replay
	}
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayAll rebuilds every record using up to workers goroutines and returns
// the results in input order.
func ReplayAll(records []storage.Record, workers int) []ProcessResult {
	pool := NewPool(Replay, WithWorkers(workers), WithBufferSize(len(records)))
	pool.Start()
	for i, rec := range records {
		pool.Submit(WorkItem{Record: rec, Index: i})
	}
	go pool.Close()

	results := make([]ProcessResult, len(records))
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}
