package session

import (
	"context"
	"sync"
	"time"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/runtime"
)

// SpinnerStyle configures a spinner's frame set and cadence.
type SpinnerStyle struct {
	Frames   []string
	Interval time.Duration
}

// Spinner spawns a background goroutine that rotates through its frame
// set at Interval, committing a set_text for each frame, until Finish
// cancels it. Cancellation is the idiomatic context.Context replacement
// for the cooperative boolean flag a single-threaded runtime would use.
type Spinner struct {
	mu       sync.Mutex
	nodeID   sc.Address
	finished bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSpinner starts the rotation goroutine immediately and registers it
// with the runtime's animation registry under id, so a process-wide
// StopAllAnimations reaches it even if the caller never calls Finish.
func NewSpinner(id string, nodeID sc.Address, style SpinnerStyle) *Spinner {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Spinner{nodeID: nodeID, cancel: cancel, done: make(chan struct{})}
	runtime.RegisterAnimation(id, s.stop)
	go s.run(ctx, id, style)
	return s
}

func (s *Spinner) run(ctx context.Context, id string, style SpinnerStyle) {
	defer close(s.done)
	frames := style.Frames
	if len(frames) == 0 {
		return
	}
	interval := style.Interval
	if interval <= 0 {
		interval = 120 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		// I/O failures here are swallowed rather than surfaced: a spinner
		// tick must never crash the session it's animating.
		_ = runtime.Commit([]sc.Command{sc.SetText(s.nodeID, frames[i%len(frames)])})
		i++
	}
}

func (s *Spinner) stop() {
	s.cancel()
	<-s.done
}

// Finish cancels the rotation goroutine and, if replacement is non-nil,
// paints it in the spinner's place and emits the subtree's terminal end
// command — always, regardless of replacement, so the region's node
// stack closes cleanly either way.
func (s *Spinner) Finish(replacement *sc.Node, opts sc.PaintOptions, pos Position) error {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return nil
	}
	s.finished = true
	s.mu.Unlock()

	s.stop()

	var commands []sc.Command
	if replacement != nil {
		commands = append(commands, sc.PaintAt(*replacement, pos.Row, pos.Column, opts)...)
	}
	commands = append(commands, sc.End(s.nodeID))
	return runtime.Commit(commands)
}

// Finished reports whether Finish has run.
func (s *Spinner) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}
