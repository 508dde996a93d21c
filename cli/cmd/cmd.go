package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	inputsKey struct{}
	stdoutKey struct{}
)

// WithInputs returns a new context.Context containing the manifest files and
// directories commands operate on.
func WithInputs(ctx context.Context, inputs []string) context.Context {
	return context.WithValue(ctx, inputsKey{}, inputs)
}

// inputsFrom retrieves the paths stored in ctx by WithInputs.
func inputsFrom(ctx context.Context) []string {
	in, _ := ctx.Value(inputsKey{}).([]string)

	return in
}

// WithStdout returns a new context.Context whose commands write their
// output to w instead of [os.Stdout].
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// stdoutFrom retrieves the writer stored in ctx by WithStdout, or os.Stdout.
func stdoutFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}
