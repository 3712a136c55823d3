// Package sequence runs cooperative, tick-driven tasks on a single goroutine.
//
// A Task is stepped once per tick until it reports Done. Tasks keep their own
// deadlines and poll their own conditions; nothing here blocks or sleeps.
// It has no dependencies on ebitengine or donburi so it can be shared by the
// headless runner and the client.
package sequence

// Status is the result of stepping a task.
type Status int

const (
	Running Status = iota
	Done
)

// epsilon absorbs float drift from summing fixed dt steps.
const epsilon = 1e-9

// Clock is the simulation time source shared by every runner of a world.
type Clock struct {
	Now  float64 // seconds since start
	DT   float64 // length of the last tick
	Tick uint64
}

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	c.DT = dt
	c.Now += dt
	c.Tick++
}

// Task is a resumable unit of work.
type Task interface {
	Step(c *Clock) Status
}

// Finalizer is implemented by tasks that need cleanup however they end:
// finished, cancelled through their Handle, or dropped by CancelAll.
type Finalizer interface {
	Finalize()
}

// Func adapts a plain function to Task.
type Func func(c *Clock) Status

func (f Func) Step(c *Clock) Status { return f(c) }

// Timer is a one-shot deadline measured on a Clock.
type Timer struct {
	until float64
	armed bool
}

// Start arms the timer to expire d seconds from now.
func (t *Timer) Start(c *Clock, d float64) {
	t.until = c.Now + d
	t.armed = true
}

// Armed reports whether Start has been called since the last Stop.
func (t *Timer) Armed() bool { return t.armed }

// Stop disarms the timer.
func (t *Timer) Stop() { t.armed = false }

// Expired reports whether an armed timer has run out.
func (t *Timer) Expired(c *Clock) bool {
	return t.armed && c.Now+epsilon >= t.until
}

// Remaining returns the seconds left, never negative.
func (t *Timer) Remaining(c *Clock) float64 {
	if !t.armed || c.Now >= t.until {
		return 0
	}
	return t.until - c.Now
}

// After returns a task that waits d seconds and then calls fn once.
func After(d float64, fn func()) Task {
	var t Timer
	return Func(func(c *Clock) Status {
		if !t.Armed() {
			t.Start(c, d)
		}
		if !t.Expired(c) {
			return Running
		}
		fn()
		return Done
	})
}
