package recipe

import (
	"github.com/ardnew/recipegen/dotpath"
	"github.com/ardnew/recipegen/value"
)

// Template is a named recipe used as the seed of a grammar.
type Template struct {
	Name   string
	Recipe Recipe
}

// Tag is a named axis of variation. A value beginning with "@" refers to a
// static property of the manifest instead of being used literally.
type Tag struct {
	Name   string
	Values []string
}

// Remove deletes the location(s) addressed by Path.
type Remove struct {
	Path dotpath.Path
}

// NewRemove returns a Remove of the given dot path.
func NewRemove(path string) Remove { return Remove{Path: dotpath.Parse(path)} }

// Apply deletes the addressed location(s) from v. A missing property is not
// an error, but an index past the end of an array is.
func (r Remove) Apply(v *value.Value) error { return r.Path.Delete(v) }

// Modify creates or replaces the location(s) addressed by Path with Value.
type Modify struct {
	Value *value.Value
	Path  dotpath.Path
}

// NewModify returns a Modify writing x at the given dot path.
func NewModify(path string, x *value.Value) Modify {
	return Modify{Path: dotpath.Parse(path), Value: x}
}

// Apply writes a copy of m.Value at each addressed location in v.
func (m Modify) Apply(v *value.Value) error { return m.Path.Set(v, m.Value) }

// Grammar expands one or more templates into recipe variants.
//
// A nil Template list selects the manifest's default template. A non-nil
// empty list selects nothing, so the grammar produces no recipes.
type Grammar struct {
	Rest     map[string]*value.Value
	When     string
	Template []string
	Tags     []Tag
	Remove   []Remove
	Modify   []Modify
}

// UsesDefault reports whether g targets the manifest's default template.
func (g Grammar) UsesDefault() bool { return g.Template == nil }
