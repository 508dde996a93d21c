package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/recipegen/manifest"
	"github.com/ardnew/recipegen/recipe"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Fmt reads a manifest and writes it back in normalized form: defaults
// filled in, one-or-many template lists expanded and object keys sorted.
type Fmt struct {
	JSON JSON `cmd:"" default:"withargs" help:"Format as JSON (default)."`
	YAML YAML `cmd:""                    help:"Format as YAML."`
}

// JSON formats a manifest as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"n"`

	Source string `arg:"" default:"-" help:"Manifest file or '-' for stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	m, err := readManifest(j.Source)
	if err != nil {
		return err
	}

	var data []byte
	if j.Indent > 0 {
		data, err = json.MarshalIndent(m, "", string(bytes.Repeat([]byte{' '}, j.Indent)))
	} else {
		data, err = json.Marshal(m)
	}

	if err != nil {
		return err
	}

	_, err = stdoutFrom(ctx).Write(append(data, '\n'))

	return err
}

// YAML formats a manifest as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"n"`

	Source string `arg:"" default:"-" help:"Manifest file or '-' for stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	m, err := readManifest(y.Source)
	if err != nil {
		return err
	}

	data, err := yaml.MarshalWithOptions(m,
		yaml.Indent(max(y.Indent, 1)),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err).With(slog.String("source", y.Source))
	}

	_, err = stdoutFrom(ctx).Write(data)

	return err
}

// readManifest loads the manifest at source. Standard input is decoded as
// YAML, which also accepts JSON documents.
func readManifest(source string) (*recipe.Manifest, error) {
	if source != stdinSource {
		return manifest.Load(source)
	}

	return manifest.Decode(os.Stdin, manifest.FormatYAML)
}
