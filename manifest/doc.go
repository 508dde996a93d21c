// Package manifest reads manifest documents from disk.
//
// A manifest is a JSON or YAML document decoded into a generic
// [value.Value] tree and then mapped onto a [recipe.Manifest]. The format
// is chosen by file extension. [Discover] expands input files and
// directories into the manifest files they name, and [SearchPath] merges
// command-line inputs with the paths listed in an environment variable.
package manifest
