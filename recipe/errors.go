package recipe

import "github.com/ardnew/recipegen/pkg"

var (
	// ErrConvert is returned when a value tree does not match the schema of
	// the type it is converted into. The "field" attribute names the
	// offending field by its dotted path.
	ErrConvert = pkg.NewError("invalid document")

	// ErrUnknownTemplate is returned when a grammar names a template that
	// the manifest does not declare.
	ErrUnknownTemplate = pkg.NewError("unknown template")

	// ErrMissingDefaultTemplate is returned when a manifest declares no
	// templates at all.
	ErrMissingDefaultTemplate = pkg.NewError("missing default template")
)
