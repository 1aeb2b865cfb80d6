// Package widthx measures and truncates text by terminal display cells
// rather than code points, so wide (CJK, emoji) glyphs occupy the columns
// they actually draw. It is the concrete default for the character-width
// collaborator spec.md leaves external.
package widthx

import (
	"github.com/clipperhouse/displaywidth"
	"github.com/rivo/uniseg"
)

// Width returns s's on-screen width in terminal cells.
func Width(s string) int {
	return displaywidth.String(s)
}

// Truncate cuts s to fit within maxWidth cells, breaking only on grapheme
// cluster boundaries so combining marks and wide glyphs never get split.
// When s overflows, the caller-supplied marker (typically "…" or "~")
// replaces the last visible cell(s) needed to make room for it.
func Truncate(s string, maxWidth int, marker string) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	markerWidth := Width(marker)
	budget := maxWidth - markerWidth
	if budget < 0 {
		budget = 0
	}

	var out []byte
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := Width(cluster)
		if used+w > budget {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + marker
}

// Pad right-pads s with spaces to exactly width cells; s is returned
// unmodified when it already meets or exceeds width.
func Pad(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	buf := make([]byte, width-w)
	for i := range buf {
		buf[i] = ' '
	}
	return s + string(buf)
}
