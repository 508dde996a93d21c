// Package recipe defines the typed documents of a generation run: the
// [Manifest] with its [Template] seeds and [Grammar] rules, and the [Recipe]
// records those rules produce.
//
// Every type maps to and from a generic [value.Value] tree through explicit
// ToValue and FromValue functions. Grammar edits ([Remove] and [Modify])
// operate on that tree, so a recipe is converted to a tree, edited, and then
// converted back, which is where a broken schema is reported as [ErrConvert].
// Fields a type does not know are kept verbatim in its Rest map.
package recipe
