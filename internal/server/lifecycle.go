package server

import "sync/atomic"

// State is a step of the startup sequence.
type State int32

const (
	StateUninitialized State = iota
	StateSchemaReady
	StateSeeded
	StateServing
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSchemaReady:
		return "schema_ready"
	case StateSeeded:
		return "seeded"
	case StateServing:
		return "serving"
	default:
		return "unknown"
	}
}

// Lifecycle holds the current [State]. It only moves forward and is safe for concurrent use.
type Lifecycle struct {
	state atomic.Int32
}

// NewLifecycle returns a [Lifecycle] in [StateUninitialized].
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return State(l.state.Load())
}

// Advance moves to next and reports whether it did. Moving backwards or staying put is refused.
func (l *Lifecycle) Advance(next State) bool {
	for {
		cur := l.state.Load()
		if int32(next) <= cur {
			return false
		}
		if l.state.CompareAndSwap(cur, int32(next)) {
			return true
		}
	}
}

// Ready reports whether the service is accepting traffic.
func (l *Lifecycle) Ready() bool {
	return l.State() == StateServing
}
