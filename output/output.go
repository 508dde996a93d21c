package output

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/recipegen/manifest"
	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/recipe"
)

// ErrWriteOutput is returned when recipes cannot be encoded or written.
var ErrWriteOutput = pkg.NewError("cannot write output")

// DefaultIndent is the number of spaces used for nesting when none is given.
const DefaultIndent = 2

// Encode returns the encoding of recipes in the given format. An indent of
// zero or less emits compact JSON; YAML always uses at least one space.
func Encode(recipes []recipe.Recipe, format manifest.Format, indent int) ([]byte, error) {
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}

	switch format {
	case manifest.FormatYAML:
		return yaml.MarshalWithOptions(recipes,
			yaml.Indent(max(indent, 1)),
			yaml.IndentSequence(true),
		)
	default:
		if indent <= 0 {
			return json.Marshal(recipes)
		}

		return json.MarshalIndent(recipes, "", string(bytes.Repeat([]byte{' '}, indent)))
	}
}

// Write encodes recipes to w, terminated by a newline.
func Write(w io.Writer, recipes []recipe.Recipe, format manifest.Format, indent int) error {
	data, err := Encode(recipes, format, indent)
	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", format.String()))
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	if _, err := w.Write(data); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// WriteFile writes recipes to the file name under dist, creating any
// missing parent directories, and returns the path written. A name that is
// absolute or escapes dist is rejected.
func WriteFile(
	dist, name string,
	recipes []recipe.Recipe,
	format manifest.Format,
	indent int,
) (string, error) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", ErrWriteOutput.With(
			slog.String("output", name),
			slog.String("reason", "path escapes output directory"),
		)
	}

	path := filepath.Join(dist, local)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", ErrWriteOutput.Wrap(err).With(slog.String("path", path))
	}

	f, err := os.Create(path)
	if err != nil {
		return "", ErrWriteOutput.Wrap(err).With(slog.String("path", path))
	}

	if err := Write(f, recipes, format, indent); err != nil {
		_ = f.Close()

		return "", pkg.WrapError(err).With(slog.String("path", path))
	}

	if err := f.Close(); err != nil {
		return "", ErrWriteOutput.Wrap(err).With(slog.String("path", path))
	}

	return path, nil
}
