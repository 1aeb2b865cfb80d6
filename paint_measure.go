package stagecraft

import "github.com/kelvinhart/stagecraft/widthx"

type size struct {
	width  int
	height int
}

// measure computes a node's intrinsic content size, ignoring any
// available-width clamp — paintAt applies that clamp separately so a
// container can still decide how much of its intrinsic size it can honor.
func measure(node Node, opts PaintOptions) size {
	switch node.Kind {
	case KindText:
		return size{widthx.Width(GetOr(node.Properties, PropText, "")), 1}
	case KindDivider:
		return size{1, 1}
	case KindSpacer:
		return size{GetOr(node.Properties, PropMinLength, 0), 0}
	case KindBadge, KindButton:
		return size{widthx.Width(GetOr(node.Properties, PropText, "")) + 2, 1}
	case KindNote:
		return size{widthx.Width(GetOr(node.Properties, PropText, "")), 1}
	case KindCode:
		return measureLines(GetOr(node.Properties, PropText, ""))
	case KindTextField:
		value := GetOr(node.Properties, PropValue, "")
		placeholder := GetOr(node.Properties, PropPlaceholder, "")
		shown := value
		if shown == "" {
			shown = placeholder
		}
		return size{widthx.Width(shown) + 2, 1}
	case KindSelector:
		items := GetOr(node.Properties, PropItems, nil)
		w := 0
		for _, it := range items {
			if iw := widthx.Width(it) + 2; iw > w {
				w = iw
			}
		}
		return size{w, len(items)}
	case KindProgress:
		return size{progressBarWidth, 1}
	case KindSpinner:
		return size{1, 1}
	case KindPanel:
		return measurePanel(node, opts)
	case KindHStack:
		return measureHStack(node, opts)
	case KindVStack:
		return measureVStack(node, opts)
	case KindGroup:
		w, h := 0, 0
		for _, c := range node.Children {
			cs := measure(c, opts)
			if cs.width > w {
				w = cs.width
			}
			h += cs.height
		}
		return size{w, h}
	default:
		return size{0, 0}
	}
}

func measureLines(text string) size {
	lines := splitLines(text)
	w := 0
	for _, l := range lines {
		if lw := widthx.Width(l); lw > w {
			w = lw
		}
	}
	return size{w, len(lines)}
}

func measurePanel(node Node, opts PaintOptions) size {
	var inner size
	if len(node.Children) > 0 {
		inner = measure(node.Children[0], opts)
	}
	width := inner.width + 2
	if explicit, ok := Get(node.Properties, PropWidth); ok {
		width = explicit
	}
	height := inner.height + 2
	if explicit, ok := Get(node.Properties, PropHeight); ok {
		height = explicit
	}
	return size{width, height}
}

func measureHStack(node Node, opts PaintOptions) size {
	padding := GetOr(node.Properties, PropPadding, 0)
	spacing := GetOr(node.Properties, PropSpacing, 0)
	w, h := 0, 0
	for i, c := range node.Children {
		cs := measure(c, opts)
		w += cs.width
		if i > 0 {
			w += spacing
		}
		if cs.height > h {
			h = cs.height
		}
	}
	return size{w + 2*padding, h + 2*padding}
}

func measureVStack(node Node, opts PaintOptions) size {
	padding := GetOr(node.Properties, PropPadding, 0)
	spacing := GetOr(node.Properties, PropSpacing, 0)
	w, h := 0, 0
	for i, c := range node.Children {
		cs := measure(c, opts)
		if cs.width > w {
			w = cs.width
		}
		h += cs.height
		if i > 0 {
			h += spacing
		}
	}
	return size{w + 2*padding, h + 2*padding}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
