package renderer

import (
	"context"
	"runtime"
	"sync"
)

// ScanlineTask represents a scanline rendering task for the worker pool
type ScanlineTask struct {
	Row int
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	Row     int
	Samples int  // Camera samples traced for the row
	Skipped bool // Row was dropped because the render was cancelled
}

// rowRenderer renders one scanline and returns the number of samples traced
type rowRenderer interface {
	renderRow(row int) int
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	renderer    rowRenderer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numRows bounds the result buffer so workers never block on delivery.
func NewWorkerPool(renderer rowRenderer, numRows, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, numWorkers),
		resultQueue: make(chan ScanlineResult, numRows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers; they stop picking up work once ctx is done
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask queues a scanline, giving up if ctx is cancelled first
func (wp *WorkerPool) SubmitTask(ctx context.Context, task ScanlineTask) bool {
	select {
	case wp.taskQueue <- task:
		return true
	case <-ctx.Done():
		return false
	}
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if ctx.Err() != nil {
			w.resultQueue <- ScanlineResult{Row: task.Row, Skipped: true}
			continue
		}

		// Rows never overlap, so writing straight into the shared image is safe
		samples := w.renderer.renderRow(task.Row)
		w.resultQueue <- ScanlineResult{Row: task.Row, Samples: samples}
	}
}
