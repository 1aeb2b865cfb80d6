package stagecraft

import "github.com/kelvinhart/stagecraft/widthx"

func borderGlyphs(unicode bool) (tl, tr, bl, br, h, v string) {
	if unicode {
		return "┌", "┐", "└", "┘", "─", "│"
	}
	return "+", "+", "+", "+", "-", "|"
}

func buildTopBorder(tl, tr, h, title string, innerWidth int) string {
	if title == "" {
		return tl + repeatRune(h, innerWidth) + tr
	}
	titleSeg := h + " " + title + " "
	dashCount := innerWidth - widthx.Width(titleSeg)
	if dashCount < 0 {
		dashCount = 0
	}
	return tl + titleSeg + repeatRune(h, dashCount) + tr
}

// paintPanel renders a bordered box around a single child, per spec.md
// §4.2: top/middle/bottom border lines, with the child inset by the
// border itself (no extra blank gutter — the scenario in spec.md §8's S2
// shows content starting in the cell immediately after the left border).
func paintPanel(node Node, row, col, availWidth int, opts PaintOptions, out *[]Command) {
	m := measure(node, opts)
	width := m.width
	if availWidth > 0 {
		// A panel fills the width it is given; an explicit PropWidth is
		// only ever clamped down to it.
		if _, explicit := Get(node.Properties, PropWidth); !explicit || availWidth < width {
			width = availWidth
		}
	}
	height := m.height
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	tl, tr, bl, br, h, v := borderGlyphs(opts.Capabilities.Unicode)
	title := GetOr(node.Properties, PropTitle, "")

	*out = append(*out, MoveCursor(row, col), Write(buildTopBorder(tl, tr, h, title, innerWidth)))

	for i := 0; i < innerHeight; i++ {
		*out = append(*out, MoveCursor(row+1+i, col), Write(v))
		*out = append(*out, MoveCursor(row+1+i, col+width-1), Write(v))
	}

	if len(node.Children) > 0 && innerHeight > 0 {
		paintAt(node.Children[0], row+1, col+1, innerWidth, innerHeight, opts, out)
	}

	*out = append(*out, MoveCursor(row+1+innerHeight, col), Write(bl+repeatRune(h, innerWidth)+br))
}
