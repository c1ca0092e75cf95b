package canonicaljson

import "golang.org/x/text/unicode/norm"

// NormalizeStrings returns a copy of a parsed value tree with every string,
// object keys included, normalized to Unicode NFC. Deployments that require
// NFC string content apply this before canonicalizing; the serializer itself
// only escapes and never normalizes, so "é" and "é" canonicalize to
// different bytes unless this pass runs first.
//
// The input tree is never mutated; objects and arrays are rebuilt.
func NormalizeStrings(v any) any {
	switch t := v.(type) {
	case string:
		return norm.NFC.String(t)
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = NormalizeStrings(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[norm.NFC.String(k)] = NormalizeStrings(elem)
		}
		return out
	default:
		return v
	}
}
