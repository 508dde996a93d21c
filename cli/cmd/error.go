package cmd

import "github.com/ardnew/recipegen/pkg"

var (
	ErrNoInput     = pkg.NewError("no input manifests (use --input or set the search path variable)")
	ErrCheckFailed = pkg.NewError("manifest check failed")
	ErrYAMLMarshal = pkg.NewError("marshal YAML")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
	ErrWatch       = pkg.NewError("watch inputs")
)
