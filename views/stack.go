package views

import sc "github.com/kelvinhart/stagecraft"

// HStack lays its children out left to right; VStack lays them top to
// bottom. Both respect Padding (uniform inset) and Spacing (inter-child
// gap), and let a Spacer child absorb leftover room along the stacking
// axis.
type HStack struct {
	Children []sc.View
	Padding  int
	Spacing  int
}

type VStack struct {
	Children []sc.View
	Padding  int
	Spacing  int
}

func NewHStack(children ...sc.View) HStack { return HStack{Children: children} }
func NewVStack(children ...sc.View) VStack { return VStack{Children: children} }

func (h HStack) WithPadding(p int) HStack { h.Padding = p; return h }
func (h HStack) WithSpacing(s int) HStack { h.Spacing = s; return h }
func (v VStack) WithPadding(p int) VStack { v.Padding = p; return v }
func (v VStack) WithSpacing(s int) VStack { v.Spacing = s; return v }

func (h HStack) MakeNode(ctx *sc.Context) sc.Node {
	return makeStack(ctx, "hstack", sc.KindHStack, h.Children, h.Padding, h.Spacing)
}

func (v VStack) MakeNode(ctx *sc.Context) sc.Node {
	return makeStack(ctx, "vstack", sc.KindVStack, v.Children, v.Padding, v.Spacing)
}

func makeStack(ctx *sc.Context, segment string, kind sc.Kind, views []sc.View, padding, spacing int) sc.Node {
	addr := ctx.MakeAddress(segment)
	parent := ctx.CurrentParent()

	props := sc.EmptyProperties
	if padding != 0 {
		props = sc.With(props, sc.PropPadding, padding)
	}
	if spacing != 0 {
		props = sc.With(props, sc.PropSpacing, spacing)
	}

	ctx.Push(addr)
	var children []sc.Node
	for _, v := range views {
		children = sc.FlattenChild(children, v.MakeNode(ctx))
	}
	ctx.Pop()

	return sc.Node{
		Address:       addr,
		Kind:          kind,
		Properties:    props,
		Children:      children,
		ParentAddress: parent,
	}
}

// Spacer absorbs slack along its parent stack's axis: flexible with no
// MinLength, or fixed to at least MinLength cells otherwise.
type Spacer struct {
	MinLength int
}

func NewSpacer() Spacer                 { return Spacer{} }
func NewMinSpacer(minLength int) Spacer { return Spacer{MinLength: minLength} }

func (s Spacer) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("spacer")
	parent := ctx.CurrentParent()
	props := sc.EmptyProperties
	if s.MinLength > 0 {
		props = sc.With(props, sc.PropMinLength, s.MinLength)
	}
	return sc.Node{Address: addr, Kind: sc.KindSpacer, Properties: props, ParentAddress: parent}
}

// Divider draws a single horizontal rule spanning its available width.
type Divider struct{}

func NewDivider() Divider { return Divider{} }

func (Divider) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("divider")
	parent := ctx.CurrentParent()
	return sc.Node{Address: addr, Kind: sc.KindDivider, Properties: sc.EmptyProperties, ParentAddress: parent}
}
