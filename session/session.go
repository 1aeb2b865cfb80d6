// Package session implements the live session: a mapping from
// caller-supplied string ids to independently elaborated, independently
// positioned regions of the screen, each incrementally repainted as its
// view changes.
package session

import (
	"sort"
	"sync"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/capabilities"
	"github.com/kelvinhart/stagecraft/runtime"
)

// Position is a zero-based (row, column) screen coordinate.
type Position struct {
	Row, Column int
}

type element struct {
	address  sc.Address
	lastNode *sc.Node
	position Position
	view     sc.View
}

// Session owns every live element's state and serializes its methods
// against one another, actor-style, so concurrent callers never observe
// (or cause) a torn update.
type Session struct {
	mu       sync.Mutex
	elements map[string]*element
	order    []string // insertion order, for deterministic position auto-assignment

	width, height int
	caps          capabilities.Capabilities
	options       sc.SessionOptions
}

// New returns an empty session sized to width x height, using caps for
// capability-aware paint decisions and opts for theme/headless behavior.
func New(width, height int, caps capabilities.Capabilities, opts sc.SessionOptions) *Session {
	return &Session{
		elements: make(map[string]*element),
		width:    width,
		height:   height,
		caps:     caps,
		options:  opts,
	}
}

func (s *Session) paintOptions() sc.PaintOptions {
	return sc.PaintOptions{Theme: s.options.ThemeOrDefault(), Capabilities: s.caps}
}

// Update elaborates view and reconciles it against the element's last
// render (if any), committing the incremental or initial command stream
// through the runtime. pos is nil to keep an existing position, or to
// auto-assign one on first use: (0, len(elements)*3).
func (s *Session) Update(id string, pos *Position, view sc.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, existed := s.elements[id]
	if !existed {
		el = &element{view: view}
		if pos != nil {
			el.position = *pos
		} else {
			el.position = Position{Row: 0, Column: len(s.elements) * 3}
		}
		s.elements[id] = el
		s.order = append(s.order, id)
	} else {
		el.view = view
		if pos != nil {
			el.position = *pos
		}
	}

	ctx := sc.NewContext(s.width, s.height, s.caps, s.options, 0)
	newNode := sc.Elaborate(view, ctx)

	var commands []sc.Command
	if el.lastNode == nil {
		commands = beginAndPaint(newNode, el.position, s.paintOptions())
	} else {
		result := sc.Reconcile(el.lastNode, newNode)
		commands = synthesizeIncremental(result, el.position, s.paintOptions())
	}
	el.lastNode = &newNode
	el.address = newNode.Address

	if s.options.Headless {
		return nil
	}
	return runtime.Commit(commands)
}

// Remove ends id's region and, if other elements remain, redraws
// everything from scratch sorted by (row, column) so the freed space
// doesn't leave a hole.
func (s *Session) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.elements[id]
	if !ok {
		return nil
	}
	delete(s.elements, id)
	s.order = removeID(s.order, id)

	commands := []sc.Command{sc.End(el.address)}
	if len(s.elements) > 0 {
		commands = append(commands, sc.ClearCmd())
		commands = append(commands, s.redrawAllLocked()...)
	}
	if s.options.Headless {
		return nil
	}
	return runtime.Commit(commands)
}

// Clear empties the element map, commits a clear command, and then tears
// every registered backend down to a clean terminal state.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = make(map[string]*element)
	s.order = nil
	if s.options.Headless {
		return nil
	}
	if err := runtime.Commit([]sc.Command{sc.ClearCmd()}); err != nil {
		return err
	}
	return runtime.Reset()
}

// Move repositions id and triggers a full redraw of every element.
func (s *Session) Move(id string, pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.elements[id]
	if !ok {
		return nil
	}
	el.position = pos

	commands := append([]sc.Command{sc.ClearCmd()}, s.redrawAllLocked()...)
	if s.options.Headless {
		return nil
	}
	return runtime.Commit(commands)
}

// redrawAllLocked emits begin+full-paint for every element sorted by
// (row, column). Callers must hold s.mu.
func (s *Session) redrawAllLocked() []sc.Command {
	ids := make([]string, 0, len(s.elements))
	for id := range s.elements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.elements[ids[i]], s.elements[ids[j]]
		if a.position.Row != b.position.Row {
			return a.position.Row < b.position.Row
		}
		return a.position.Column < b.position.Column
	})

	var out []sc.Command
	for _, id := range ids {
		el := s.elements[id]
		if el.lastNode == nil {
			continue
		}
		out = append(out, beginAndPaint(*el.lastNode, el.position, s.paintOptions())...)
	}
	return out
}

// GetView returns id's last-committed view and whether id exists.
func (s *Session) GetView(id string) (sc.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.elements[id]
	if !ok {
		return nil, false
	}
	return el.view, true
}

// GetPosition returns id's current position and whether id exists.
func (s *Session) GetPosition(id string) (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.elements[id]
	if !ok {
		return Position{}, false
	}
	return el.position, true
}

// GetAllIDs returns every live element id, in insertion order.
func (s *Session) GetAllIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Count returns the number of live elements.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.elements)
}

// End tears the session down: it stops every registered animation (the
// process-wide StopAllAnimations, since spinner/progress handles register
// there) and clears this session's own state.
func (s *Session) End() error {
	runtime.StopAllAnimations()
	return s.Clear()
}

func beginAndPaint(node sc.Node, pos Position, opts sc.PaintOptions) []sc.Command {
	cmds := []sc.Command{sc.Begin(node.Address, node.Kind, node.ParentAddress)}
	cmds = append(cmds, sc.PaintAt(node, pos.Row, pos.Column, opts)...)
	return cmds
}

// synthesizeIncremental turns a reconciliation result into the ordered
// command stream spec.md's command-synthesis rules describe: deletions
// close their region, moves close-then-reopen at the new address, updates
// clear and repaint in place, insertions open and paint fresh. Root-only
// filtering (RootInsertions/RootDeletions) avoids a redundant nested
// begin/paint for every descendant of an already-covered subtree.
func synthesizeIncremental(result sc.ReconciliationResult, pos Position, opts sc.PaintOptions) []sc.Command {
	var out []sc.Command
	for _, d := range sc.RootDeletions(result) {
		out = append(out, sc.End(d.Address))
	}
	for _, m := range result.Moves {
		out = append(out, sc.End(m.From))
		out = append(out, sc.Begin(m.To, m.Kind, m.ParentAddress))
		out = append(out, sc.PaintAt(m.Node, pos.Row, pos.Column, opts)...)
	}
	for _, u := range result.Updates {
		out = append(out, sc.ClearLineCmd())
		out = append(out, sc.PaintAt(u, pos.Row, pos.Column, opts)...)
	}
	for _, n := range sc.RootInsertions(result) {
		out = append(out, sc.Begin(n.Address, n.Kind, n.ParentAddress))
		out = append(out, sc.PaintAt(n, pos.Row, pos.Column, opts)...)
	}
	return out
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
