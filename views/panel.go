package views

import sc "github.com/kelvinhart/stagecraft"

// Panel is a single-child bordered container with an optional title
// rendered into the top border, the way elvisnm-wt's worktree/services/tab
// panels render their " x - Title " caption.
type Panel struct {
	Title   string
	Content sc.View
}

func NewPanel(title string, content sc.View) Panel {
	return Panel{Title: title, Content: content}
}

func (p Panel) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("panel")
	parent := ctx.CurrentParent()

	props := sc.EmptyProperties
	if p.Title != "" {
		props = sc.With(props, sc.PropTitle, p.Title)
	}
	props = sc.With(props, sc.PropBordered, true)

	var children []sc.Node
	if p.Content != nil {
		ctx.Push(addr)
		child := p.Content.MakeNode(ctx)
		ctx.Pop()
		children = sc.FlattenChild(children, child)
	}

	return sc.Node{
		Address:       addr,
		Kind:          sc.KindPanel,
		Properties:    props,
		Children:      children,
		ParentAddress: parent,
	}
}
