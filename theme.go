package stagecraft

// Theme resolves a semantic color tag to a concrete color. It is an
// external collaborator: the core only depends on this interface, never on
// a particular palette implementation.
type Theme interface {
	Resolve(SemanticTag) Color
}

// neutralTheme is the zero-configuration fallback used when a Context is
// built without an explicit theme. It maps every semantic tag to a plain
// xterm-256 color so paint output is still legible without a palette.
type neutralTheme struct{}

func (neutralTheme) Resolve(tag SemanticTag) Color {
	switch tag {
	case SemanticAccent:
		return Xterm256(39)
	case SemanticMuted:
		return Xterm256(244)
	case SemanticInfo:
		return Xterm256(75)
	case SemanticSuccess:
		return Xterm256(34)
	case SemanticWarning:
		return Xterm256(214)
	case SemanticError:
		return Xterm256(160)
	default:
		return Xterm256(250)
	}
}

// DefaultTheme is the package-level neutral palette used when a session
// doesn't supply its own.
var DefaultTheme Theme = neutralTheme{}

// resolveSemantic resolves a semantic c to a concrete color via theme
// (DefaultTheme when theme is nil). Colors that are already concrete (or
// None) pass through unchanged.
func resolveSemantic(c Color, theme Theme) Color {
	if !c.IsSemantic() {
		return c
	}
	if theme == nil {
		theme = DefaultTheme
	}
	return theme.Resolve(c.semantic)
}
