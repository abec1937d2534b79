package application

import "sync/atomic"

// Readiness tracks whether the data provider has finished its initial load.
// Views render a loading indicator until MarkReady is called.
type Readiness struct {
	ready atomic.Bool
}

// NewReadiness returns a Readiness in the loading state.
func NewReadiness() *Readiness {
	return &Readiness{}
}

// MarkReady records that initial loading finished.
func (r *Readiness) MarkReady() {
	r.ready.Store(true)
}

// IsLoading reports whether initial loading is still in progress.
func (r *Readiness) IsLoading() bool {
	return !r.ready.Load()
}
