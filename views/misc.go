package views

import sc "github.com/kelvinhart/stagecraft"

// Badge is a short, pill-like inline status marker (e.g. "●  running").
type Badge struct {
	Text       string
	Foreground sc.Color
}

func NewBadge(text string, fg sc.Color) Badge { return Badge{Text: text, Foreground: fg} }

func (b Badge) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("badge")
	parent := ctx.CurrentParent()
	props := sc.With(sc.EmptyProperties, sc.PropText, b.Text)
	if !b.Foreground.IsNone() {
		props = sc.With(props, sc.PropForeground, b.Foreground)
	}
	return sc.Node{Address: addr, Kind: sc.KindBadge, Properties: props, ParentAddress: parent}
}

// Note is a dim, auxiliary line of text — the hint-bar style of
// elvisnm-wt's status bar.
type Note struct {
	Text string
}

func NewNote(text string) Note { return Note{Text: text} }

func (n Note) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("note")
	parent := ctx.CurrentParent()
	props := sc.With(sc.EmptyProperties, sc.PropText, n.Text)
	return sc.Node{Address: addr, Kind: sc.KindNote, Properties: props, ParentAddress: parent}
}

// Code renders a fixed-width code block, optionally tagged with a
// language for a collaborator syntax highlighter to use.
type Code struct {
	Text     string
	Language string
}

func NewCode(text, language string) Code { return Code{Text: text, Language: language} }

func (c Code) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("code")
	parent := ctx.CurrentParent()
	props := sc.With(sc.EmptyProperties, sc.PropText, c.Text)
	if c.Language != "" {
		props = sc.With(props, sc.PropLanguage, c.Language)
	}
	return sc.Node{Address: addr, Kind: sc.KindCode, Properties: props, ParentAddress: parent}
}

// TextField is a single-line editable field, mirroring elvisnm-wt's
// RenderInputBar prompt/value/cursor composition.
type TextField struct {
	Placeholder string
	Value       string
}

func NewTextField(placeholder, value string) TextField {
	return TextField{Placeholder: placeholder, Value: value}
}

func (t TextField) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("textfield")
	parent := ctx.CurrentParent()
	props := sc.With(sc.EmptyProperties, sc.PropValue, t.Value)
	if t.Placeholder != "" {
		props = sc.With(props, sc.PropPlaceholder, t.Placeholder)
	}
	return sc.Node{Address: addr, Kind: sc.KindTextField, Properties: props, ParentAddress: parent}
}

// Button is a single clickable/activatable label.
type Button struct {
	Label   string
	Pressed bool
}

func NewButton(label string) Button { return Button{Label: label} }

func (b Button) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("button")
	parent := ctx.CurrentParent()
	props := sc.With(sc.EmptyProperties, sc.PropText, b.Label)
	props = sc.With(props, sc.PropPressed, b.Pressed)
	return sc.Node{Address: addr, Kind: sc.KindButton, Properties: props, ParentAddress: parent}
}

// Selector is a vertical list of items with a selected index, the engine
// counterpart of elvisnm-wt's worktree/services/picker panels.
type Selector struct {
	Items    []string
	Selected int
}

func NewSelector(items []string, selected int) Selector {
	return Selector{Items: items, Selected: selected}
}

func (s Selector) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("selector")
	parent := ctx.CurrentParent()
	props := sc.With(sc.EmptyProperties, sc.PropItems, s.Items)
	props = sc.With(props, sc.PropSelectedIndex, s.Selected)
	return sc.Node{Address: addr, Kind: sc.KindSelector, Properties: props, ParentAddress: parent}
}

// Progress renders a determinate bar from Current/Total.
type Progress struct {
	Current int
	Total   int
}

func NewProgress(current, total int) Progress { return Progress{Current: current, Total: total} }

func (p Progress) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("progress")
	parent := ctx.CurrentParent()
	props := sc.With(sc.EmptyProperties, sc.PropCurrent, p.Current)
	props = sc.With(props, sc.PropTotal, p.Total)
	return sc.Node{Address: addr, Kind: sc.KindProgress, Properties: props, ParentAddress: parent}
}

// Spinner renders frame FrameIndex of Frames (or a default braille set).
type Spinner struct {
	Frames     []string
	FrameIndex int
}

var DefaultSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func NewSpinner(frameIndex int) Spinner { return Spinner{Frames: DefaultSpinnerFrames, FrameIndex: frameIndex} }

func (s Spinner) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("spinner")
	parent := ctx.CurrentParent()
	frames := s.Frames
	if len(frames) == 0 {
		frames = DefaultSpinnerFrames
	}
	props := sc.With(sc.EmptyProperties, sc.PropFrames, frames)
	props = sc.With(props, sc.PropFrameIndex, s.FrameIndex)
	return sc.Node{Address: addr, Kind: sc.KindSpinner, Properties: props, ParentAddress: parent}
}
