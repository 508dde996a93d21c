package manifest

import (
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/recipegen/pkg"
	"github.com/ardnew/recipegen/recipe"
	"github.com/ardnew/recipegen/value"
)

// Decode reads one manifest document in the given format from r.
func Decode(r io.Reader, format Format) (*recipe.Manifest, error) {
	doc, err := decodeValue(r, format)
	if err != nil {
		return nil, ErrDecodeManifest.Wrap(err).With(
			slog.String("format", format.String()),
		)
	}

	return recipe.ManifestFromValue(doc)
}

func decodeValue(r io.Reader, format Format) (*value.Value, error) {
	if format == FormatJSON {
		return value.Decode(r)
	}

	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	return value.FromNative(raw)
}

// Load reads and decodes the manifest at path, choosing the format from its
// extension. Errors carry the file name as the "manifest" attribute.
func Load(path string) (*recipe.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadManifest.Wrap(err).With(slog.String("manifest", path))
	}
	defer f.Close()

	m, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("manifest", path))
	}

	return m, nil
}
