package datagen

import (
	"iter"
	"log/slog"

	"github.com/ardnew/recipegen/recipe"
)

// Substitution replaces every "%Tag%" with Value.
type Substitution struct {
	Tag   string
	Value string
}

// Token returns the text replaced by s.
func (s Substitution) Token() string { return "%" + s.Tag + "%" }

// Apply substitutes s throughout every string of r.
func (s Substitution) Apply(r *recipe.Recipe) { r.ReplaceAll(s.Token(), s.Value) }

// Patch assigns one value to each tag of a grammar, in tag order.
type Patch []Substitution

// Apply applies each substitution of p to r in order.
func (p Patch) Apply(r *recipe.Recipe) {
	for _, s := range p {
		s.Apply(r)
	}
}

// Env returns the tag values of p keyed by tag name. When a tag name
// repeats, the later value wins.
func (p Patch) Env() map[string]any {
	env := make(map[string]any, len(p))
	for _, s := range p {
		env[s.Tag] = s.Value
	}

	return env
}

// LogValue implements slog.LogValuer.
func (p Patch) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(p))
	for i, s := range p {
		attrs[i] = slog.String(s.Tag, s.Value)
	}

	return slog.GroupValue(attrs...)
}

// PatchIterator enumerates the cartesian product of the values of a list of
// tags, advancing like an odometer: the last tag varies fastest and carries
// into the tag before it when it wraps. It is single-pass.
type PatchIterator struct {
	tags  []ResolvedTag
	index []int
	done  bool
}

// NewPatchIterator returns an iterator over every combination of the values
// of tags. With no tags it yields one empty patch. If any tag has no values
// it yields nothing.
func NewPatchIterator(tags []ResolvedTag) *PatchIterator {
	it := &PatchIterator{tags: tags, index: make([]int, len(tags))}

	for _, t := range tags {
		if len(t.Values) == 0 {
			it.done = true
		}
	}

	return it
}

// Next returns the next patch, or false when the product is exhausted.
func (it *PatchIterator) Next() (Patch, bool) {
	if it.done {
		return nil, false
	}

	p := make(Patch, len(it.tags))
	for i, t := range it.tags {
		p[i] = Substitution{Tag: t.Name, Value: t.Values[it.index[i]]}
	}

	it.advance()

	return p, true
}

func (it *PatchIterator) advance() {
	for i := len(it.index) - 1; i >= 0; i-- {
		it.index[i]++
		if it.index[i] < len(it.tags[i].Values) {
			return
		}

		it.index[i] = 0
	}

	it.done = true
}

// Patches returns a sequence over the patches of a new [PatchIterator].
func Patches(tags []ResolvedTag) iter.Seq[Patch] {
	return func(yield func(Patch) bool) {
		it := NewPatchIterator(tags)

		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Count returns the number of patches enumerated over tags.
func Count(tags []ResolvedTag) int {
	n := 1
	for _, t := range tags {
		n *= len(t.Values)
	}

	return n
}
