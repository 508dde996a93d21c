package dotpath

import "github.com/ardnew/recipegen/pkg"

// Errors returned by [Path.Set] and [Path.Delete]. Each returned error
// carries the full path as the "path" attribute and, depending on the
// kind, the property name, index, array length or the kind of value found.
var (
	ErrUnknownProperty             = pkg.NewError("unknown property in object path")
	ErrIndexOutOfBounds            = pkg.NewError("index out of bounds")
	ErrExpectedObjectToSet         = pkg.NewError("expected object to set property")
	ErrExpectedObjectToRemove      = pkg.NewError("expected object to remove property")
	ErrExpectedArrayToSet          = pkg.NewError("expected array to set index")
	ErrExpectedArrayToRemove       = pkg.NewError("expected array to remove index")
	ErrExpectedContainerAtWildcard = pkg.NewError("expected object or array at wildcard")
)
