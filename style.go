package stagecraft

// TextStyle is a bitset over the eight SGR text attributes spec.md's
// command model can emit.
type TextStyle uint8

const (
	Bold TextStyle = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Hidden
	Strikethrough
)

func (s TextStyle) Has(attr TextStyle) bool { return s&attr != 0 }

func (s TextStyle) With(attr TextStyle) TextStyle { return s | attr }

func (s TextStyle) IsEmpty() bool { return s == 0 }

// attrs returns the set attributes in a stable, low-to-high bit order —
// the order the ANSI backend applies them in when re-entering a style.
func (s TextStyle) attrs() []TextStyle {
	var out []TextStyle
	for _, a := range []TextStyle{Bold, Dim, Italic, Underline, Blink, Reverse, Hidden, Strikethrough} {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
