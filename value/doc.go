// Package value provides the generic structured value used as the editable
// substrate of recipe expansion.
//
// A [Value] is a tagged union over object, array, string, number, boolean
// and null, mirroring the JSON data model. Numbers keep the literal text they
// were decoded from. Values are mutable in place and cheap to deep-copy with
// [Value.Clone].
//
// Conversion to and from plain Go values ([Value.ToNative], [FromNative])
// is the bridge to the JSON and YAML codecs; Value also implements the
// json and goccy/go-yaml marshaling interfaces directly.
package value
