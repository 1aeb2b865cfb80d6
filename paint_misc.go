package stagecraft

import (
	"fmt"
	"strings"

	"github.com/kelvinhart/stagecraft/widthx"
)

const progressBarWidth = 24

func paintBadge(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	text := " " + GetOr(node.Properties, PropText, "") + " "
	text = widthx.Truncate(text, width, truncationMarker)
	fg, _ := Get(node.Properties, PropForeground)
	if fg.IsNone() {
		fg = Semantic(SemanticAccent)
	}
	emitStyledText(row, col, text, fg, NoColor, Reverse, opts.Theme, out)
}

func paintNote(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	text := GetOr(node.Properties, PropText, "")
	text = widthx.Truncate(text, width, truncationMarker)
	emitStyledText(row, col, text, Semantic(SemanticMuted), NoColor, Dim, opts.Theme, out)
}

func paintCode(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	lines := splitLines(GetOr(node.Properties, PropText, ""))
	for i, line := range lines {
		line = widthx.Truncate(line, width, truncationMarker)
		emitStyledText(row+i, col, line, NoColor, NoColor, 0, opts.Theme, out)
	}
}

func paintTextField(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	value := GetOr(node.Properties, PropValue, "")
	placeholder := GetOr(node.Properties, PropPlaceholder, "")
	text := value
	style := TextStyle(0)
	fg := NoColor
	if text == "" {
		text = placeholder
		fg = Semantic(SemanticMuted)
		style = Dim
	}
	bracketed := "[" + widthx.Truncate(text, width-2, truncationMarker) + "]"
	emitStyledText(row, col, bracketed, fg, NoColor, style, opts.Theme, out)
}

func paintButton(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	label := GetOr(node.Properties, PropText, "")
	pressed := GetOr(node.Properties, PropPressed, false)
	text := widthx.Truncate("< "+label+" >", width, truncationMarker)
	style := TextStyle(0)
	if pressed {
		style = Reverse
	}
	emitStyledText(row, col, text, Semantic(SemanticAccent), NoColor, style, opts.Theme, out)
}

func paintSelector(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	items := GetOr(node.Properties, PropItems, nil)
	selected := GetOr(node.Properties, PropSelectedIndex, -1)
	for i, item := range items {
		marker := "  "
		style := TextStyle(0)
		fg := NoColor
		if i == selected {
			marker = "▸ "
			style = Bold
			fg = Semantic(SemanticAccent)
		}
		line := widthx.Truncate(marker+item, width, truncationMarker)
		emitStyledText(row+i, col, line, fg, NoColor, style, opts.Theme, out)
	}
}

func paintProgress(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	total := GetOr(node.Properties, PropTotal, 0)
	current := GetOr(node.Properties, PropCurrent, 0)
	barWidth := progressBarWidth
	if width > 0 && width < barWidth {
		barWidth = width
	}
	if barWidth < 2 {
		barWidth = 2
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(current) / float64(total)
		if ratio > 1 {
			ratio = 1
		}
	}
	filled := int(ratio * float64(barWidth-2))
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-2-filled) + "]"
	label := fmt.Sprintf(" %d%%", int(ratio*100))

	*out = append(*out, Frame(node.Address, 0, ratio))
	emitStyledText(row, col, bar+label, Semantic(SemanticAccent), NoColor, 0, opts.Theme, out)
}

func paintSpinner(node Node, row, col, width int, opts PaintOptions, out *[]Command) {
	frames := GetOr(node.Properties, PropFrames, nil)
	idx := GetOr(node.Properties, PropFrameIndex, 0)
	frame := "·"
	if len(frames) > 0 {
		frame = frames[idx%len(frames)]
	}
	emitStyledText(row, col, frame, Semantic(SemanticAccent), NoColor, 0, opts.Theme, out)
}
