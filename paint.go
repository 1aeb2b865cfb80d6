package stagecraft

import "github.com/kelvinhart/stagecraft/capabilities"

// PaintOptions carries the two things the paint engine consults beyond the
// node tree itself: the theme (to resolve semantic colors) and the
// capabilities bundle (to pick a Unicode or ASCII border glyph set). Color
// *downgrading* to the capabilities' color depth is the ANSI backend's
// job, not the paint engine's — the engine only ever emits fully resolved,
// undowngraded colors.
type PaintOptions struct {
	Theme        Theme
	Capabilities capabilities.Capabilities
}

// Paint translates node and its descendants into the ordered command
// stream that, applied to a freshly reset terminal starting at (0,0),
// reproduces it. Paint is pure and never fails.
func Paint(node Node, opts PaintOptions) []Command {
	return PaintAt(node, 0, 0, opts)
}

// PaintAt is Paint with an explicit top-left position, for callers placing
// an independently elaborated region somewhere other than the origin — the
// live session positions each of its elements this way.
func PaintAt(node Node, row, col int, opts PaintOptions) []Command {
	m := measure(node, opts)
	var out []Command
	paintAt(node, row, col, m.width, m.height, opts, &out)
	return out
}

// paintAt dispatches on node.Kind to the matching sub-painter. Every
// sub-painter receives the top-left position it owns and the width/height
// it may use, and must position the cursor before writing, balance every
// style/color command with a reset, and truncate text to width using
// display-cell measurement. height is the container's idea of how tall
// this subtree should be allowed to stretch (for spacer slack); 0 means
// "use intrinsic height, don't stretch".
func paintAt(node Node, row, col, width, height int, opts PaintOptions, out *[]Command) {
	switch node.Kind {
	case KindText:
		paintText(node, row, col, width, opts, out)
	case KindPanel:
		paintPanel(node, row, col, width, opts, out)
	case KindHStack:
		paintHStack(node, row, col, width, height, opts, out)
	case KindVStack:
		paintVStack(node, row, col, width, height, opts, out)
	case KindDivider:
		paintDivider(node, row, col, width, opts, out)
	case KindSpacer:
		// Spacers occupy layout space only; they paint nothing.
	case KindBadge:
		paintBadge(node, row, col, width, opts, out)
	case KindNote:
		paintNote(node, row, col, width, opts, out)
	case KindCode:
		paintCode(node, row, col, width, opts, out)
	case KindTextField:
		paintTextField(node, row, col, width, opts, out)
	case KindButton:
		paintButton(node, row, col, width, opts, out)
	case KindSelector:
		paintSelector(node, row, col, width, opts, out)
	case KindProgress:
		paintProgress(node, row, col, width, opts, out)
	case KindSpinner:
		paintSpinner(node, row, col, width, opts, out)
	case KindGroup:
		// Groups never survive elaboration; defensively paint children in
		// place so a hand-built tree that skipped flattening still renders.
		for _, c := range node.Children {
			paintAt(c, row, col, width, height, opts, out)
		}
	}
}

// emitStyledText positions the cursor, wraps fg/bg/style commands around a
// single Write, and always emits a balancing Reset when any were applied —
// satisfying testable property 5 regardless of which sub-painter calls it.
func emitStyledText(row, col int, text string, fg, bg Color, style TextStyle, theme Theme, out *[]Command) {
	*out = append(*out, MoveCursor(row, col))

	fg = resolveSemantic(fg, theme)
	bg = resolveSemantic(bg, theme)

	wrapped := false
	if !fg.IsNone() {
		*out = append(*out, SetForeground(fg))
		wrapped = true
	}
	if !bg.IsNone() {
		*out = append(*out, SetBackground(bg))
		wrapped = true
	}
	if !style.IsEmpty() {
		*out = append(*out, SetStyle(style))
		wrapped = true
	}

	*out = append(*out, Write(text))

	if wrapped {
		*out = append(*out, Reset())
	}
}
