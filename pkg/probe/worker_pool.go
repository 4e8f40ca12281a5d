package probe

import (
	"runtime"
	"sync"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/lights"
)

// RowTask asks a worker to evaluate one grid row
type RowTask struct {
	Grid Grid
	Row  int
}

// RowResult holds the samples of one evaluated row
type RowResult struct {
	Row     int
	Samples []Sample
}

// WorkerPool evaluates grid rows in parallel. Every worker shares the same
// light and occluders; both are read-only during evaluation.
type WorkerPool struct {
	light       lights.Light
	occluders   []core.Surface
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool with numWorkers workers, or one per CPU
// when numWorkers <= 0. queueSize bounds the task and result buffers.
func NewWorkerPool(light lights.Light, occluders []core.Surface, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		light:       light,
		occluders:   occluders,
		taskQueue:   make(chan RowTask, queueSize),
		resultQueue: make(chan RowResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.work()
	}
}

// Stop closes the task queue, waits for in-flight rows and closes results
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a row for evaluation
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row; ok is false once the pool is stopped
// and drained
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) work() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		samples := make([]Sample, task.Grid.Cols)
		for col := range samples {
			samples[col] = Evaluate(wp.light, task.Grid.Point(col, task.Row), wp.occluders)
		}
		wp.resultQueue <- RowResult{Row: task.Row, Samples: samples}
	}
}

// EvaluateGrid evaluates every grid point with numWorkers workers and
// returns the samples ordered by row then column
func EvaluateGrid(light lights.Light, grid Grid, occluders []core.Surface, numWorkers int) ([][]Sample, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	pool := NewWorkerPool(light, occluders, numWorkers, grid.Rows)
	pool.Start()
	for row := 0; row < grid.Rows; row++ {
		pool.SubmitTask(RowTask{Grid: grid, Row: row})
	}
	pool.Stop()

	rows := make([][]Sample, grid.Rows)
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		rows[result.Row] = result.Samples
	}
	return rows, nil
}
