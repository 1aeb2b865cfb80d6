// Package views is the default leaf component catalog: Text, Panel,
// Divider, Badge, Note, Code, TextField, Button, Selector, Progress,
// Spinner, Group, HStack, VStack and Spacer. spec.md treats this catalog
// as an external collaborator — the core only needs the Kind enum and the
// property keys these views populate.
package views

import sc "github.com/kelvinhart/stagecraft"

// Text is a leaf view rendering a single run of (optionally styled,
// optionally colored) text.
type Text struct {
	Content    string
	Foreground sc.Color
	Background sc.Color
	Style      sc.TextStyle
}

func NewText(content string) Text { return Text{Content: content} }

func (t Text) WithForeground(c sc.Color) Text { t.Foreground = c; return t }
func (t Text) WithBackground(c sc.Color) Text { t.Background = c; return t }
func (t Text) WithStyle(s sc.TextStyle) Text  { t.Style = s; return t }

func (t Text) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("text")
	parent := ctx.CurrentParent()

	props := sc.EmptyProperties
	props = sc.With(props, sc.PropText, t.Content)
	if !t.Foreground.IsNone() {
		props = sc.With(props, sc.PropForeground, t.Foreground)
	}
	if !t.Background.IsNone() {
		props = sc.With(props, sc.PropBackground, t.Background)
	}
	if !t.Style.IsEmpty() {
		props = sc.With(props, sc.PropStyle, t.Style)
	}

	return sc.Node{
		Address:       addr,
		Kind:          sc.KindText,
		Properties:    props,
		ParentAddress: parent,
	}
}
