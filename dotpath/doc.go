// Package dotpath addresses and edits locations inside a [value.Value] tree.
//
// A path is a string of dot-separated segments. Each segment is one of:
//
//   - "*", a wildcard matching every child of an object or array;
//   - a non-negative decimal integer, an array index;
//   - anything else, an object property name.
//
// Tokenization is purely syntactic. A numeric segment is always an index,
// even when the tree at that position is an object whose keys look like
// numbers, so "a.0" can never address the property "0" of object a.
//
// [Path.Set] creates or replaces the addressed location(s) and [Path.Delete]
// removes them. Deleting a property that does not exist succeeds without
// change, while deleting an index past the end of an array is an error.
//
// A trailing wildcard addresses the children themselves, not an empty
// property inside each child: "a.*" with Set replaces every child of a,
// and with Delete leaves a as an empty object or array.
package dotpath
