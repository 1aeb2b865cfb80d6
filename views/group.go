package views

import sc "github.com/kelvinhart/stagecraft"

// Group re-exports the core's transparent composition primitive so
// callers building screens don't need to import the root package
// separately just to splice a slice of views into one parent.
type Group = sc.Group

func NewGroup(children ...sc.View) Group { return Group{Children: children} }
