package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/ardnew/recipegen/pkg"
)

// ErrUnsupportedType is returned when a native Go value has no Value
// representation.
var ErrUnsupportedType = pkg.NewError("unsupported native type")

// ToNative converts v to plain Go values: map[string]any, []any, string,
// bool, nil, and int64, uint64 or float64 for numbers.
func (v *Value) ToNative() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindNumber:
		if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return i
		}

		if u, err := strconv.ParseUint(v.s, 10, 64); err == nil {
			return u
		}

		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return f
		}

		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, x := range v.arr {
			out[i] = x.ToNative()
		}

		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, x := range v.obj {
			out[k] = x.ToNative()
		}

		return out
	default:
		return nil
	}
}

// FromNative converts plain Go values, as produced by JSON and YAML
// decoders, into a Value.
func FromNative(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return NewNull(), nil
	case *Value:
		return t.Clone(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t), nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return NewNumber(json.Number(strconv.FormatUint(uint64(t), 10))), nil
	case uint8:
		return NewInt(int64(t)), nil
	case uint16:
		return NewInt(int64(t)), nil
	case uint32:
		return NewInt(int64(t)), nil
	case uint64:
		return NewNumber(json.Number(strconv.FormatUint(t, 10))), nil
	case float32:
		return fromFloat(float64(t))
	case float64:
		return fromFloat(t)
	case []any:
		items := make([]*Value, len(t))
		for i, e := range t {
			item, err := FromNative(e)
			if err != nil {
				return nil, err
			}

			items[i] = item
		}

		return NewArray(items...), nil
	case []string:
		items := make([]*Value, len(t))
		for i, e := range t {
			items[i] = NewString(e)
		}

		return NewArray(items...), nil
	case map[string]any:
		entries := make(map[string]*Value, len(t))
		for k, e := range t {
			entry, err := FromNative(e)
			if err != nil {
				return nil, err
			}

			entries[k] = entry
		}

		return NewObject(entries), nil
	case map[any]any:
		entries := make(map[string]*Value, len(t))
		for k, e := range t {
			entry, err := FromNative(e)
			if err != nil {
				return nil, err
			}

			entries[fmt.Sprint(k)] = entry
		}

		return NewObject(entries), nil
	default:
		return nil, ErrUnsupportedType.With(slog.String("type", fmt.Sprintf("%T", x)))
	}
}

func fromFloat(f float64) (*Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrUnsupportedType.With(slog.Float64("number", f))
	}

	return NewFloat(f), nil
}

// Decode reads one JSON document from r into a Value. Numbers keep their
// literal text.
func Decode(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	return FromNative(raw)
}

// ParseJSON decodes a JSON document into a Value.
func ParseJSON(data []byte) (*Value, error) {
	return Decode(bytes.NewReader(data))
}

// MustParseJSON is like [ParseJSON] but panics on error. It is intended for
// tests and static initializers.
func MustParseJSON(s string) *Value {
	v, err := ParseJSON([]byte(s))
	if err != nil {
		panic(err)
	}

	return v
}

// jsonNative is like ToNative but keeps numbers as json.Number so that
// encoding preserves their literal text.
func (v *Value) jsonNative() any {
	switch v.Kind() {
	case KindNumber:
		return json.Number(v.s)
	case KindArray:
		out := make([]any, len(v.arr))
		for i, x := range v.arr {
			out[i] = x.jsonNative()
		}

		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, x := range v.obj {
			out[k] = x.jsonNative()
		}

		return out
	default:
		return v.ToNative()
	}
}

// MarshalJSON implements json.Marshaler. Object keys are emitted in sorted
// order.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.jsonNative())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	x, err := ParseJSON(data)
	if err != nil {
		return err
	}

	*v = *x

	return nil
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler.
func (v *Value) MarshalYAML() (any, error) {
	return v.ToNative(), nil
}

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	x, err := FromNative(raw)
	if err != nil {
		return err
	}

	*v = *x

	return nil
}
