// Package outer contains test fixtures for receiver dependencies (-report-outer).
package outer

type Worker struct{ id int }

//vt:helper
func (w *Worker) ID() int { return w.id }

type Job struct{ n int }

//vt:helper
func (j Job) N() int { return j.n }

// [REPORT]: Method call on the receiver
func (w *Worker) Start() func() int {
	return func() int { // want `closure depends on the receiver of Worker`
		return w.ID()
	}
}

// [REPORT]: Dependency of a nested closure
func (w *Worker) Deferred() func() func() int {
	return func() func() int { // want `closure depends on the receiver of Worker`
		return func() int { // want `closure depends on the receiver of Worker`
			return w.id
		}
	}
}

// [OK]: Method of an unrelated type
func (w *Worker) Run(j Job) func() int {
	return func() int { return j.N() }
}

// [OK]: Method of another value of the receiver type
func (w *Worker) Peer(o *Worker) func() int {
	return func() int { return o.ID() }
}

// [OK]: Field of a captured variable, not of the receiver
func free(w *Worker) func() int {
	return func() int { return w.id }
}

// [OK]: Suppressed
func (w *Worker) Ignored() func() int {
	//capturelint:ignore outer
	return func() int { return w.id }
}
