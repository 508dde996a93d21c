package dotpath

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/value"
)

// Separator delimits the segments of a path.
const Separator = "."

// WildcardSegment is the segment text that matches every child.
const WildcardSegment = "*"

// TokenKind identifies the role of one path segment.
type TokenKind uint8

const (
	Property TokenKind = iota // named object entry
	Index                     // array element
	Wildcard                  // every child
)

func (k TokenKind) String() string {
	switch k {
	case Property:
		return "property"
	case Index:
		return "index"
	case Wildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Token is one parsed path segment. Name is set for [Property] tokens and
// Index for [Index] tokens.
type Token struct {
	Name  string
	Index int
	Kind  TokenKind
}

// String returns the segment text the token was parsed from.
func (t Token) String() string {
	switch t.Kind {
	case Index:
		return strconv.Itoa(t.Index)
	case Wildcard:
		return WildcardSegment
	default:
		return t.Name
	}
}

// Tokenize splits path on [Separator] and classifies each segment.
// It never fails: empty segments become empty property names, so the empty
// path yields a single empty property.
func Tokenize(path string) []Token {
	segs := strings.Split(path, Separator)
	toks := make([]Token, len(segs))

	for i, s := range segs {
		toks[i] = parseSegment(s)
	}

	return toks
}

func parseSegment(s string) Token {
	if s == WildcardSegment {
		return Token{Kind: Wildcard}
	}

	// One leading plus sign is accepted; a minus sign never is.
	digits := s
	if len(s) > 1 && s[0] == '+' {
		digits = s[1:]
	}

	if n, err := strconv.ParseUint(digits, 10, 64); err == nil && n <= math.MaxInt {
		return Token{Kind: Index, Index: int(n)}
	}

	return Token{Kind: Property, Name: s}
}

// Path is a tokenized dot path.
type Path struct {
	raw    string
	tokens []Token
}

// Parse tokenizes s into a Path.
func Parse(s string) Path { return Path{raw: s, tokens: Tokenize(s)} }

// String returns the path text.
func (p Path) String() string { return p.raw }

// Tokens returns a copy of the tokens of p.
func (p Path) Tokens() []Token { return append([]Token(nil), p.tokens...) }

// Set writes a copy of repl to every location addressed by p in root.
// Each written location receives its own deep copy, so no two locations
// share storage with each other or with repl.
func (p Path) Set(root, repl *value.Value) error {
	return p.edit(root, editor{path: p.raw, repl: repl})
}

// Delete removes every location addressed by p from root.
func (p Path) Delete(root *value.Value) error {
	return p.edit(root, editor{path: p.raw, remove: true})
}

func (p Path) edit(root *value.Value, e editor) error {
	tokens := p.tokens
	if tokens == nil {
		// Zero Path, same as Parse("").
		tokens = []Token{{Kind: Property}}
	}

	return e.walk(root, tokens)
}

// Set is shorthand for Parse(path).Set(root, repl).
func Set(root *value.Value, path string, repl *value.Value) error {
	return Parse(path).Set(root, repl)
}

// Delete is shorthand for Parse(path).Delete(root).
func Delete(root *value.Value, path string) error {
	return Parse(path).Delete(root)
}

// editor applies one action (set or remove) along a token sequence.
type editor struct {
	repl   *value.Value
	path   string
	remove bool
}

func (e editor) action() string {
	if e.remove {
		return "remove"
	}

	return "set"
}

func (e editor) fail(err *pkg.Error, v *value.Value, attrs ...slog.Attr) error {
	base := []slog.Attr{
		slog.String("path", e.path),
		slog.String("found", v.Kind().String()),
	}

	return err.With(append(base, attrs...)...)
}

// walk consumes tokens[0] at v and recurses on the remainder. tokens is
// never empty.
func (e editor) walk(v *value.Value, tokens []Token) error {
	tok, rest := tokens[0], tokens[1:]

	switch tok.Kind {
	case Wildcard:
		return e.fanOut(v, rest)
	case Index:
		return e.index(v, tok.Index, rest)
	default:
		return e.property(v, tok.Name, rest)
	}
}

func (e editor) property(v *value.Value, name string, rest []Token) error {
	if v.Kind() != value.KindObject {
		err := ErrExpectedObjectToSet
		if e.remove {
			err = ErrExpectedObjectToRemove
		}

		return e.fail(err, v, slog.String("property", name))
	}

	if len(rest) == 0 {
		if e.remove {
			v.Delete(name)
		} else {
			v.Set(name, e.repl.Clone())
		}

		return nil
	}

	child, ok := v.Get(name)
	if !ok {
		return e.fail(ErrUnknownProperty, v, slog.String("property", name))
	}

	return e.walk(child, rest)
}

func (e editor) index(v *value.Value, i int, rest []Token) error {
	if v.Kind() != value.KindArray {
		err := ErrExpectedArrayToSet
		if e.remove {
			err = ErrExpectedArrayToRemove
		}

		return e.fail(err, v, slog.Int("index", i))
	}

	if i >= v.Len() {
		return e.fail(ErrIndexOutOfBounds, v,
			slog.Int("index", i),
			slog.Int("length", v.Len()),
		)
	}

	if len(rest) == 0 {
		if e.remove {
			v.RemoveIndex(i)
		} else {
			v.SetIndex(i, e.repl.Clone())
		}

		return nil
	}

	return e.walk(v.Index(i), rest)
}

// fanOut applies rest independently to every child of v. With nothing left
// to walk, the action applies to the children themselves.
func (e editor) fanOut(v *value.Value, rest []Token) error {
	switch v.Kind() {
	case value.KindArray, value.KindObject:
	default:
		return e.fail(ErrExpectedContainerAtWildcard, v,
			slog.String("action", e.action()),
			slog.String("value", v.String()),
		)
	}

	if len(rest) == 0 {
		return e.fanOutTerminal(v)
	}

	for child := range v.Children() {
		if err := e.walk(child, rest); err != nil {
			return err
		}
	}

	return nil
}

func (e editor) fanOutTerminal(v *value.Value) error {
	if e.remove {
		v.Clear()

		return nil
	}

	if v.Kind() == value.KindArray {
		for i := range v.Len() {
			v.SetIndex(i, e.repl.Clone())
		}

		return nil
	}

	for _, k := range v.Keys() {
		v.Set(k, e.repl.Clone())
	}

	return nil
}
