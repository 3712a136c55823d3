package sequence

type job struct {
	id   uint64
	task Task
	done bool
}

// Runner owns the tasks of one actor. Tasks are stepped in launch order.
type Runner struct {
	clock  *Clock
	jobs   []*job
	nextID uint64
}

// Handle refers to a spawned task.
type Handle struct {
	r  *Runner
	id uint64
}

func NewRunner(c *Clock) *Runner {
	return &Runner{clock: c}
}

// Clock returns the clock the runner steps against.
func (r *Runner) Clock() *Clock { return r.clock }

// Spawn registers t and steps it once immediately, so work before the
// task's first suspension point happens in the caller's tick.
func (r *Runner) Spawn(t Task) Handle {
	r.nextID++
	j := &job{id: r.nextID, task: t}
	r.jobs = append(r.jobs, j)
	r.step(j)
	return Handle{r: r, id: j.id}
}

// Tick steps every task that was pending when the tick began. Tasks spawned
// during the tick already took their first step in Spawn.
func (r *Runner) Tick() {
	pending := make([]*job, len(r.jobs))
	copy(pending, r.jobs)
	for _, j := range pending {
		if j.done {
			continue
		}
		r.step(j)
	}
	r.compact()
}

// CancelAll ends every pending task, running finalizers in launch order.
func (r *Runner) CancelAll() {
	pending := r.jobs
	r.jobs = nil
	for _, j := range pending {
		r.finish(j)
	}
}

// Len returns the number of live tasks.
func (r *Runner) Len() int {
	n := 0
	for _, j := range r.jobs {
		if !j.done {
			n++
		}
	}
	return n
}

func (r *Runner) step(j *job) {
	if j.task.Step(r.clock) == Done {
		r.finish(j)
	}
}

func (r *Runner) finish(j *job) {
	if j.done {
		return
	}
	j.done = true
	if f, ok := j.task.(Finalizer); ok {
		f.Finalize()
	}
}

func (r *Runner) compact() {
	live := r.jobs[:0]
	for _, j := range r.jobs {
		if !j.done {
			live = append(live, j)
		}
	}
	for i := len(live); i < len(r.jobs); i++ {
		r.jobs[i] = nil
	}
	r.jobs = live
}

func (r *Runner) lookup(id uint64) *job {
	for _, j := range r.jobs {
		if j.id == id {
			return j
		}
	}
	return nil
}

// Alive reports whether the task is still pending.
func (h Handle) Alive() bool {
	if h.r == nil {
		return false
	}
	j := h.r.lookup(h.id)
	return j != nil && !j.done
}

// Cancel ends the task without stepping it again. Its finalizer runs.
func (h Handle) Cancel() {
	if h.r == nil {
		return
	}
	if j := h.r.lookup(h.id); j != nil {
		h.r.finish(j)
	}
}
