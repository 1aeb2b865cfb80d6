package session

import (
	"sync"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/runtime"
)

// Progress is a live handle over a progress node: it clamps updates to
// [0, total] and emits a frame command only when the visible value
// actually changes.
type Progress struct {
	mu       sync.Mutex
	nodeID   sc.Address
	total    int
	current  int
	label    string
	finished bool
}

// NewProgress returns a handle bound to nodeID, tracking a bar out of
// total steps.
func NewProgress(nodeID sc.Address, total int, label string) *Progress {
	return &Progress{nodeID: nodeID, total: total, label: label}
}

// Update clamps n to [0, total] and, if that changed the visible value
// and the handle isn't finished, commits a frame command through the
// runtime.
func (p *Progress) Update(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if n > p.total {
		n = p.total
	}
	if n == p.current {
		return nil
	}
	p.current = n

	ratio := 0.0
	if p.total > 0 {
		ratio = float64(p.current) / float64(p.total)
	}
	return runtime.Commit([]sc.Command{sc.Frame(p.nodeID, p.current, ratio)})
}

// Finish marks the handle done and records a terminal frame at the
// current value. It is idempotent: only the first call does anything.
func (p *Progress) Finish(status string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return nil
	}
	p.finished = true
	p.label = status

	ratio := 0.0
	if p.total > 0 {
		ratio = float64(p.current) / float64(p.total)
	}
	return runtime.Commit([]sc.Command{sc.Frame(p.nodeID, p.current, ratio)})
}

// Current returns the handle's current value.
func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Finished reports whether Finish has been called.
func (p *Progress) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finished
}
