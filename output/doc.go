// Package output encodes generated recipes as a JSON array or a YAML
// sequence and writes them under a distribution directory.
package output
