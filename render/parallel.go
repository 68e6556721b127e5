package render

import (
	"runtime"
	"sync"
)

// RowParallel renders one task per row on a bounded worker pool
// Each task owns exclusive write access to its row; no locks guard the frame
type RowParallel struct {
	params  Params
	workers int
}

// NewRowParallel creates a row-parallel renderer
// workers <= 0 selects runtime.GOMAXPROCS(0)
func NewRowParallel(p Params, workers int) *RowParallel {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &RowParallel{params: p, workers: workers}
}

// Name implements Renderer
func (r *RowParallel) Name() string {
	return string(StrategyParallel)
}

// Workers returns the configured pool cap
func (r *RowParallel) Workers() int {
	return r.workers
}

// poolSize returns the goroutine count for a frame of the given height
func (r *RowParallel) poolSize(height int) int {
	if height < r.workers {
		return height
	}
	return r.workers
}

// Render implements Renderer
// Returns only after every row task has finished; the frame is never observed partially filled
func (r *RowParallel) Render(width, height int) *Frame {
	f := NewFrame(width, height)
	height = f.Height()
	if height == 0 {
		return f
	}

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	n := r.poolSize(height)
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for j := range rows {
				r.params.fillRow(f.Row(j), j, f.Width(), height)
			}
		}()
	}
	wg.Wait()

	return f
}
