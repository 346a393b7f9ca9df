package concurrency

import (
	"context"
	"sync"

	"passwordCheckerBackend/internal/core/domain"
)

// Task analyzes one password of a batch. Index ties the result back to its
// input position so batch output order is preserved.
type Task struct {
	Index int
	Run   func(ctx context.Context) (domain.Report, error)
}

type Result struct {
	Index  int
	Report domain.Report
	Err    error
}

// WorkerPool fans batch analysis tasks out over a fixed worker count.
type WorkerPool struct {
	numWorkers int
	tasks      chan Task
	results    chan Result
	wg         sync.WaitGroup
}

func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		tasks:      make(chan Task, queueSize),
		results:    make(chan Result, queueSize),
	}
}

func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work(ctx)
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

// Submit queues a task. Call Close after the last submission; submitting
// after Close panics.
func (p *WorkerPool) Submit(t Task) {
	p.tasks <- t
}

func (p *WorkerPool) Close() {
	close(p.tasks)
}

func (p *WorkerPool) Results() <-chan Result {
	return p.results
}

func (p *WorkerPool) work(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			report, err := task.Run(ctx)
			select {
			case p.results <- Result{Index: task.Index, Report: report, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}
