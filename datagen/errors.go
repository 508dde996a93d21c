package datagen

import "github.com/ardnew/recipegen/pkg"

var (
	// ErrUnknownStaticProperty is returned when a tag value refers to a
	// static property that the manifest does not declare.
	ErrUnknownStaticProperty = pkg.NewError("unknown static property")

	// ErrInvalidStaticProperty is returned when a tag value is a bare "@" or
	// refers to a static property that is neither a string nor an array of
	// strings.
	ErrInvalidStaticProperty = pkg.NewError("invalid static property")

	// ErrFilter is returned when a grammar's when expression does not
	// compile to a boolean expression over its tags.
	ErrFilter = pkg.NewError("invalid grammar filter")
)
