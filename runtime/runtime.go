// Package runtime hosts the process-wide terminal runtime: the set of
// registered backends a committed command stream fans out to, and the
// registry of animation goroutines a session's live handles register
// themselves into so a caller can stop everything in one call on exit.
package runtime

import (
	"sync"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/capabilities"
)

var (
	mu       sync.Mutex
	backends []sc.Backend
	caps     capabilities.Capabilities
	capsSet  bool
	anims    = map[string]context_cancel{}
)

// context_cancel is the minimal shape an animation registers: a stop
// function the runtime calls on shutdown. Named with an underscore since
// it's a package-private detail, not an exported type.
type context_cancel func()

// Register adds b to the set of backends Commit fans a command stream out
// to, in call order. Registration order is also apply order: Commit
// guarantees backends see every Apply call in the order they registered.
func Register(b sc.Backend) {
	mu.Lock()
	defer mu.Unlock()
	backends = append(backends, b)
}

// SetCapabilities pins the capabilities bundle paint should use for this
// process. Session construction normally calls this once at startup.
func SetCapabilities(c capabilities.Capabilities) {
	mu.Lock()
	defer mu.Unlock()
	caps = c
	capsSet = true
}

// Capabilities returns the pinned bundle, detecting one lazily from the
// environment if SetCapabilities was never called.
func Capabilities() capabilities.Capabilities {
	mu.Lock()
	defer mu.Unlock()
	if !capsSet {
		caps = capabilities.Detect()
		capsSet = true
	}
	return caps
}

// Commit delivers commands to every registered backend, serialized behind
// the runtime's lock so two goroutines committing concurrently can't
// interleave their Apply calls against a single backend. The first error
// from any backend stops the fan-out and is returned; backends already
// applied are not rolled back.
func Commit(commands []sc.Command) error {
	mu.Lock()
	defer mu.Unlock()
	for _, b := range backends {
		if err := b.Apply(commands); err != nil {
			return err
		}
	}
	return nil
}

// Flush drains every registered backend's buffer.
func Flush() error {
	mu.Lock()
	defer mu.Unlock()
	for _, b := range backends {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Reset tears every registered backend down to a clean terminal state
// (screen clear, cursor home, cursor shown, shadow state dropped) and
// drains unconditionally. A session calls this on Clear/End, as opposed to
// Commit with a clear command, which only clears the screen region.
func Reset() error {
	mu.Lock()
	defer mu.Unlock()
	for _, b := range backends {
		if err := b.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// RegisterAnimation records stop under id so StopAllAnimations can reach
// it later. A second registration under the same id replaces the first
// without calling its stop function — callers are expected to have
// already stopped the prior one themselves.
func RegisterAnimation(id string, stop func()) {
	mu.Lock()
	defer mu.Unlock()
	anims[id] = context_cancel(stop)
}

// UnregisterAnimation removes id from the registry without calling its
// stop function, for the common case where the animation already
// finished on its own.
func UnregisterAnimation(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(anims, id)
}

// StopAllAnimations calls every registered animation's stop function and
// clears the registry — the runtime's answer to "the process is exiting,
// stop every spinner and progress ticker cleanly."
func StopAllAnimations() {
	mu.Lock()
	stops := make([]func(), 0, len(anims))
	for _, s := range anims {
		stops = append(stops, s)
	}
	anims = map[string]context_cancel{}
	mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}

// ClearAll resets every piece of package state. It exists for tests: a
// process-wide singleton needs a way to start over between test cases
// without leaking backends or animations across them.
func ClearAll() {
	mu.Lock()
	defer mu.Unlock()
	backends = nil
	anims = map[string]context_cancel{}
	capsSet = false
}
