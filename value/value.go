package value

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant of the tagged union a Value holds.
type Kind uint8

const (
	KindNull   Kind = iota // null
	KindBool               // boolean
	KindNumber             // number
	KindString             // string
	KindArray              // array
	KindObject             // object
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a generic, recursively defined structured value: an object, an
// array, a string, a number, a boolean or null.
//
// The zero Value and the nil *Value are both null.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or the literal text of a number
	arr  []*Value
	obj  map[string]*Value
}

// NewNull returns a null value.
func NewNull() *Value { return &Value{kind: KindNull} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{kind: KindString, s: s} }

// NewNumber returns a number value holding the given literal text, which is
// kept verbatim so integers round-trip without float conversion.
func NewNumber(n json.Number) *Value {
	return &Value{kind: KindNumber, s: n.String()}
}

// NewInt returns a number value for an integer.
func NewInt(i int64) *Value {
	return &Value{kind: KindNumber, s: strconv.FormatInt(i, 10)}
}

// NewFloat returns a number value for a floating-point number.
func NewFloat(f float64) *Value {
	return &Value{kind: KindNumber, s: strconv.FormatFloat(f, 'g', -1, 64)}
}

// NewArray returns an array value containing items.
func NewArray(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}

	return &Value{kind: KindArray, arr: items}
}

// NewObject returns an object value containing entries.
// A nil map yields an empty object.
func NewObject(entries map[string]*Value) *Value {
	if entries == nil {
		entries = map[string]*Value{}
	}

	return &Value{kind: KindObject, obj: entries}
}

// Kind returns the variant held by v.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// AsBool returns the boolean held by v.
func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}

	return v.b, true
}

// AsString returns the string held by v.
func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}

	return v.s, true
}

// AsNumber returns the literal text of the number held by v.
func (v *Value) AsNumber() (json.Number, bool) {
	if v.Kind() != KindNumber {
		return "", false
	}

	return json.Number(v.s), true
}

// Len returns the number of elements of an array or entries of an object,
// and zero for any other kind.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Index returns element i of an array. It panics if v is not an array or i
// is out of range.
func (v *Value) Index(i int) *Value { return v.arr[i] }

// SetIndex replaces element i of an array.
func (v *Value) SetIndex(i int, x *Value) { v.arr[i] = x }

// RemoveIndex deletes element i of an array, shifting later elements down.
func (v *Value) RemoveIndex(i int) { v.arr = slices.Delete(v.arr, i, i+1) }

// Clear removes every element of an array or entry of an object.
func (v *Value) Clear() {
	switch v.Kind() {
	case KindArray:
		v.arr = []*Value{}
	case KindObject:
		clear(v.obj)
	}
}

// Get returns the entry of an object with the given key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}

	x, ok := v.obj[key]

	return x, ok
}

// Set creates or replaces the entry of an object with the given key.
func (v *Value) Set(key string, x *Value) { v.obj[key] = x }

// Delete removes the entry of an object with the given key, if present.
func (v *Value) Delete(key string) { delete(v.obj, key) }

// Keys returns the keys of an object in sorted order.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}

	return slices.Sorted(maps.Keys(v.obj))
}

// Elements returns an iterator over the elements of an array.
func (v *Value) Elements() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.Kind() != KindArray {
			return
		}

		for i, x := range v.arr {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Entries returns an iterator over the entries of an object in key order.
func (v *Value) Entries() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range v.Keys() {
			if !yield(k, v.obj[k]) {
				return
			}
		}
	}
}

// Children returns an iterator over the direct children of an array (in
// index order) or an object (in key order).
func (v *Value) Children() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		switch v.Kind() {
		case KindArray:
			for _, x := range v.arr {
				if !yield(x) {
					return
				}
			}
		case KindObject:
			for _, k := range v.Keys() {
				if !yield(v.obj[k]) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return NewNull()
	}

	c := &Value{kind: v.kind, b: v.b, s: v.s}

	switch v.kind {
	case KindArray:
		c.arr = make([]*Value, len(v.arr))
		for i, x := range v.arr {
			c.arr[i] = x.Clone()
		}
	case KindObject:
		c.obj = make(map[string]*Value, len(v.obj))
		for k, x := range v.obj {
			c.obj[k] = x.Clone()
		}
	}

	return c
}

// Equal reports whether v and w are structurally equal. Numbers compare by
// numeric value when both parse as floats, otherwise by literal text.
func (v *Value) Equal(w *Value) bool {
	if v.Kind() != w.Kind() {
		return false
	}

	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindString:
		return v.s == w.s
	case KindNumber:
		if v.s == w.s {
			return true
		}

		a, errA := strconv.ParseFloat(v.s, 64)
		b, errB := strconv.ParseFloat(w.s, 64)

		return errA == nil && errB == nil && a == b
	case KindArray:
		return slices.EqualFunc(v.arr, w.arr, (*Value).Equal)
	case KindObject:
		return maps.EqualFunc(v.obj, w.obj, (*Value).Equal)
	default:
		return false
	}
}

// ReplaceAll substitutes every occurrence of old with repl in every string
// reachable from v, recursing through arrays and objects. Object keys and
// non-string scalars are left untouched.
func (v *Value) ReplaceAll(old, repl string) {
	switch v.Kind() {
	case KindString:
		v.s = strings.ReplaceAll(v.s, old, repl)
	case KindArray:
		for _, x := range v.arr {
			x.ReplaceAll(old, repl)
		}
	case KindObject:
		for _, x := range v.obj {
			x.ReplaceAll(old, repl)
		}
	}
}

// String returns the compact JSON encoding of v.
func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<" + v.Kind().String() + ">"
	}

	return string(b)
}
