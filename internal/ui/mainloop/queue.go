package mainloop

import "sync"

// Queue is a minimal host loop: Post appends, Drain runs. It backs headless
// hosts such as the simulate command and tests.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// Post appends fn to the queue.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunOnce runs the tasks queued at the time of the call. Tasks they post run
// on the next call. It returns how many tasks ran.
func (q *Queue) RunOnce() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

// Drain runs rounds until the queue is empty or limit rounds have run.
// It returns the number of rounds.
func (q *Queue) Drain(limit int) int {
	rounds := 0
	for rounds < limit && q.Len() > 0 {
		q.RunOnce()
		rounds++
	}
	return rounds
}
