package stagecraft

// CommandTag is the closed set of primitive operations a backend knows how
// to apply.
type CommandTag int

const (
	CmdBegin CommandTag = iota
	CmdSetText
	CmdFrame
	CmdEnd

	CmdClear
	CmdClearLine
	CmdClearToEOL

	CmdMoveCursor
	CmdSaveCursor
	CmdRestoreCursor
	CmdHideCursor
	CmdShowCursor

	CmdSetForeground
	CmdSetBackground
	CmdSetStyle
	CmdReset

	CmdWrite
	CmdWriteLine

	CmdFlush
)

// Command is a single value in the ordered, finite stream the paint engine
// produces and a backend consumes. Only the fields relevant to Tag are
// populated; the rest carry their zero value.
type Command struct {
	Tag CommandTag

	// Structural (Begin/SetText/Frame/End)
	Address       Address
	Kind          Kind
	ParentAddress Address
	Text          string
	FrameIndex    int
	Progress      float64

	// Cursor
	Row    int
	Column int

	// Style
	Foreground Color
	Background Color
	Style      TextStyle
}

func Begin(addr Address, kind Kind, parent Address) Command {
	return Command{Tag: CmdBegin, Address: addr, Kind: kind, ParentAddress: parent}
}

func SetText(addr Address, text string) Command {
	return Command{Tag: CmdSetText, Address: addr, Text: text}
}

func Frame(addr Address, frameIndex int, progress float64) Command {
	return Command{Tag: CmdFrame, Address: addr, FrameIndex: frameIndex, Progress: progress}
}

func End(addr Address) Command { return Command{Tag: CmdEnd, Address: addr} }

func ClearCmd() Command        { return Command{Tag: CmdClear} }
func ClearLineCmd() Command    { return Command{Tag: CmdClearLine} }
func ClearToEOLCmd() Command   { return Command{Tag: CmdClearToEOL} }

func MoveCursor(row, column int) Command {
	return Command{Tag: CmdMoveCursor, Row: row, Column: column}
}

func SaveCursor() Command    { return Command{Tag: CmdSaveCursor} }
func RestoreCursor() Command { return Command{Tag: CmdRestoreCursor} }
func HideCursor() Command    { return Command{Tag: CmdHideCursor} }
func ShowCursor() Command    { return Command{Tag: CmdShowCursor} }

func SetForeground(c Color) Command { return Command{Tag: CmdSetForeground, Foreground: c} }
func SetBackground(c Color) Command { return Command{Tag: CmdSetBackground, Background: c} }
func SetStyle(s TextStyle) Command  { return Command{Tag: CmdSetStyle, Style: s} }
func Reset() Command                { return Command{Tag: CmdReset} }

func Write(s string) Command     { return Command{Tag: CmdWrite, Text: s} }
func WriteLine(s string) Command { return Command{Tag: CmdWriteLine, Text: s} }

func Flush() Command { return Command{Tag: CmdFlush} }
