package stagecraft

// paintVStack lays children out top to bottom, uniformly inset by padding
// and separated by spacing. A Spacer child with no MinLength absorbs any
// leftover height between the stack's intrinsic height and availHeight;
// one with a MinLength is guaranteed at least that many rows.
func paintVStack(node Node, row, col, width, availHeight int, opts PaintOptions, out *[]Command) {
	padding := GetOr(node.Properties, PropPadding, 0)
	spacing := GetOr(node.Properties, PropSpacing, 0)
	innerWidth := width - 2*padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	sizes := make([]size, len(node.Children))
	fixedHeight := 0
	var flexIdx []int
	for i, c := range node.Children {
		sizes[i] = measure(c, opts)
		if c.Kind == KindSpacer && GetOr(c.Properties, PropMinLength, 0) == 0 {
			flexIdx = append(flexIdx, i)
		} else {
			fixedHeight += sizes[i].height
		}
		if i > 0 {
			fixedHeight += spacing
		}
	}

	slack := 0
	if availHeight > 0 {
		slack = availHeight - 2*padding - fixedHeight
		if slack < 0 {
			slack = 0
		}
	}
	per, extra := 0, 0
	if len(flexIdx) > 0 {
		per = slack / len(flexIdx)
		extra = slack % len(flexIdx)
	}

	y := row + padding
	for i, c := range node.Children {
		h := sizes[i].height
		if isFlexSpacer(c, i, flexIdx) {
			h = per
			if indexOfInt(flexIdx, i) == 0 {
				h += extra
			}
		}
		paintAt(c, y, col+padding, innerWidth, h, opts, out)
		y += h
		if i < len(node.Children)-1 {
			y += spacing
		}
	}
}

// paintHStack lays children out left to right; Spacer flex absorbs
// leftover width the same way paintVStack absorbs leftover height.
func paintHStack(node Node, row, col, availWidth, height int, opts PaintOptions, out *[]Command) {
	padding := GetOr(node.Properties, PropPadding, 0)
	spacing := GetOr(node.Properties, PropSpacing, 0)

	sizes := make([]size, len(node.Children))
	fixedWidth := 0
	var flexIdx []int
	for i, c := range node.Children {
		sizes[i] = measure(c, opts)
		if c.Kind == KindSpacer && GetOr(c.Properties, PropMinLength, 0) == 0 {
			flexIdx = append(flexIdx, i)
		} else {
			fixedWidth += sizes[i].width
		}
		if i > 0 {
			fixedWidth += spacing
		}
	}

	slack := 0
	if availWidth > 0 {
		slack = availWidth - 2*padding - fixedWidth
		if slack < 0 {
			slack = 0
		}
	}
	per, extra := 0, 0
	if len(flexIdx) > 0 {
		per = slack / len(flexIdx)
		extra = slack % len(flexIdx)
	}

	x := col + padding
	for i, c := range node.Children {
		w := sizes[i].width
		if isFlexSpacer(c, i, flexIdx) {
			w = per
			if indexOfInt(flexIdx, i) == 0 {
				w += extra
			}
		}
		paintAt(c, row+padding, x, w, height, opts, out)
		x += w
		if i < len(node.Children)-1 {
			x += spacing
		}
	}
}

func isFlexSpacer(c Node, i int, flexIdx []int) bool {
	return c.Kind == KindSpacer && indexOfInt(flexIdx, i) >= 0
}

func indexOfInt(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
