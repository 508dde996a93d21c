package manifest

import "github.com/ardnew/recipegen/pkg"

var (
	// ErrReadManifest is returned when a manifest or input directory cannot
	// be read.
	ErrReadManifest = pkg.NewError("cannot read manifest")

	// ErrDecodeManifest is returned when a manifest is not a valid JSON or
	// YAML document.
	ErrDecodeManifest = pkg.NewError("cannot decode manifest")

	// ErrUnknownFormat is returned when a format name is neither json nor
	// yaml.
	ErrUnknownFormat = pkg.NewError("unknown document format")
)
