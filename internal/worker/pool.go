package worker

// Job is a unit of work producing a single value.
type Job[T any] func() T

// Result pairs a job's output with the ID it was submitted under.
type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed number of goroutines. Used for
// one-shot batch work such as pre-decoding question sets at startup.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workerCount goroutines draining a buffered job queue.
func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	for job := range p.jobs {
		output := job.fn()
		p.results <- Result[T]{
			JobID:  job.id,
			Output: output,
		}
	}
}

// Submit enqueues a job. Must not be called after Close.
func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Close stops the workers once the queue drains. Results for already
// submitted jobs remain readable from Results.
func (p *Pool[T]) Close() {
	close(p.jobs)
}

// Results exposes the output channel. Callers are expected to read
// exactly as many results as they submitted jobs.
func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}
