package stagecraft

import "github.com/kelvinhart/stagecraft/widthx"

const truncationMarker = "…"

func paintText(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	text := GetOr(node.Properties, PropText, "")
	text = widthx.Truncate(text, width, truncationMarker)

	fg, _ := Get(node.Properties, PropForeground)
	bg, _ := Get(node.Properties, PropBackground)
	style := GetOr(node.Properties, PropStyle, TextStyle(0))

	emitStyledText(row, col, text, fg, bg, style, opts.Theme, out)
}

func paintDivider(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	ch := "─"
	if !opts.Capabilities.Unicode {
		ch = "-"
	}
	line := repeatRune(ch, width)
	*out = append(*out, MoveCursor(row, col), Write(line))
}

func repeatRune(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
