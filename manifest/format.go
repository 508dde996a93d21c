package manifest

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// Format identifies a document encoding.
type Format int

// Supported document formats.
const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the lowercase name of f.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// Formats returns the names of all supported formats.
func Formats() []string {
	return []string{FormatJSON.String(), FormatYAML.String()}
}

// ParseFormat returns the Format with the given name, ignoring case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatJSON, ErrUnknownFormat.With(slog.String("format", name))
	}
}

// FormatFromPath returns the format implied by the extension of path.
// Anything other than .yaml or .yml is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// IsManifest reports whether path has a manifest file extension.
func IsManifest(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
