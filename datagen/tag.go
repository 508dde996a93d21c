package datagen

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/recipe"
	"github.com/ardnew/recipegen/value"
)

// StaticPrefix marks a tag value as a reference to a static property.
const StaticPrefix = "@"

// ResolvedTag is a tag whose values are all concrete strings.
type ResolvedTag struct {
	Name   string
	Values []string
}

// ResolveTag replaces each static property reference among the values of
// tag with the value(s) of that property. Order and duplicates are kept.
func ResolveTag(tag recipe.Tag, static map[string]*value.Value) (ResolvedTag, error) {
	out := ResolvedTag{Name: tag.Name, Values: make([]string, 0, len(tag.Values))}

	for _, raw := range tag.Values {
		if !strings.HasPrefix(raw, StaticPrefix) {
			out.Values = append(out.Values, raw)

			continue
		}

		vals, err := resolveStatic(tag.Name, raw, static)
		if err != nil {
			return ResolvedTag{}, err
		}

		out.Values = append(out.Values, vals...)
	}

	return out, nil
}

func resolveStatic(tag, raw string, static map[string]*value.Value) ([]string, error) {
	key := strings.TrimLeft(raw, StaticPrefix)
	if key == "" {
		return nil, ErrInvalidStaticProperty.With(
			slog.String("tag", tag),
			slog.String("value", raw),
		)
	}

	prop, ok := static[key]
	if !ok {
		err := ErrUnknownStaticProperty.With(
			slog.String("tag", tag),
			slog.String("property", key),
		)

		return nil, pkg.WithSuggestion(err, key, slices.Sorted(maps.Keys(static)))
	}

	if s, ok := prop.AsString(); ok {
		return []string{s}, nil
	}

	if prop.Kind() != value.KindArray {
		return nil, invalidStatic(tag, key, prop)
	}

	vals := make([]string, 0, prop.Len())

	for i, x := range prop.Elements() {
		s, ok := x.AsString()
		if !ok {
			return nil, invalidStatic(tag, key+"."+strconv.Itoa(i), x)
		}

		vals = append(vals, s)
	}

	return vals, nil
}

func invalidStatic(tag, prop string, v *value.Value) error {
	return ErrInvalidStaticProperty.With(
		slog.String("tag", tag),
		slog.String("property", prop),
		slog.String("value", v.String()),
	)
}
