// Package canonicaljson implements the OCP canonical serialization of JSON
// values: object members sorted by code point at every depth, arrays kept in
// order, strings escaped to printable ASCII, and numbers normalized to their
// shortest value-preserving decimal form. Cooperating implementations in
// other languages must produce byte-identical output for the same logical
// input; the rules here are the wire contract, not a style choice.
package canonicaljson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf16"
)

// MaxNestingDepth is the default recursion limit. Inputs nested deeper than
// this are rejected with ErrInvalidInput instead of exhausting the stack.
const MaxNestingDepth = 512

// Canonicalize takes any JSON-marshalable Go value, round-trips it through
// encoding/json to obtain the parsed value tree, and returns the canonical
// UTF-8 bytes. Structs are accepted; their JSON tags determine member names.
func Canonicalize(v any) ([]byte, error) {
	return CanonicalizeWithDepth(v, MaxNestingDepth)
}

// CanonicalizeWithDepth is Canonicalize with an explicit nesting limit.
func CanonicalizeWithDepth(v any, maxDepth int) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal: %v", ErrInvalidInput, err)
	}
	return CanonicalizeRawWithDepth(raw, maxDepth)
}

// CanonicalizeRaw parses raw JSON text and returns its canonical form.
// Number literals are kept as json.Number so integer values survive intact
// up to MaxSafeInteger.
func CanonicalizeRaw(raw json.RawMessage) ([]byte, error) {
	return CanonicalizeRawWithDepth(raw, MaxNestingDepth)
}

// CanonicalizeRawWithDepth is CanonicalizeRaw with an explicit nesting limit.
func CanonicalizeRawWithDepth(raw json.RawMessage, maxDepth int) ([]byte, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	return CanonicalizeValueWithDepth(v, maxDepth)
}

// CanonicalizeValue serializes an already-parsed value tree. Unlike
// Canonicalize it performs no marshal round-trip: the input must consist of
// the supported value kinds (nil, bool, string, numbers, []any,
// map[string]any) and anything else is an ErrInvalidInput. This is the
// strict entry point for callers that hold a parser's output directly.
func CanonicalizeValue(v any) ([]byte, error) {
	return CanonicalizeValueWithDepth(v, MaxNestingDepth)
}

// CanonicalizeValueWithDepth is CanonicalizeValue with an explicit nesting
// limit. A cyclic tree is caught by the limit rather than recursing forever.
func CanonicalizeValueWithDepth(v any, maxDepth int) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, 0, maxDepth); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any, depth, maxDepth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: nesting depth exceeds %d", ErrInvalidInput, maxDepth)
	}
	switch classify(v) {
	case kindNull:
		buf.WriteString("null")
	case kindBool:
		if v.(bool) {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case kindString:
		encodeString(buf, v.(string))
	case kindNumber:
		s, err := formatNumber(v)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case kindArray:
		buf.WriteByte('[')
		for i, elem := range v.([]any) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, elem, depth+1, maxDepth); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case kindObject:
		m := v.(map[string]any)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		// Byte-wise sort of UTF-8 keys is Unicode code-point order.
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeString(buf, k)
			buf.WriteByte(':')
			if err := encodeValue(buf, m[k], depth+1, maxDepth); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
	return nil
}

// encodeString writes the canonical double-quoted form of s: printable ASCII
// (0x20-0x7E) is emitted literally except for the mandatory \" and \\
// escapes; every other character becomes a lowercase \uXXXX escape, one per
// UTF-16 code unit, so astral code points produce an escaped surrogate pair.
func encodeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\\':
			buf.WriteString(`\\`)
		case r >= 0x20 && r <= 0x7e:
			buf.WriteByte(byte(r))
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			writeHexEscape(buf, hi)
			writeHexEscape(buf, lo)
		default:
			writeHexEscape(buf, r)
		}
	}
	buf.WriteByte('"')
}

func writeHexEscape(buf *bytes.Buffer, r rune) {
	const hexdigits = "0123456789abcdef"
	buf.WriteString(`\u`)
	buf.WriteByte(hexdigits[r>>12&0xf])
	buf.WriteByte(hexdigits[r>>8&0xf])
	buf.WriteByte(hexdigits[r>>4&0xf])
	buf.WriteByte(hexdigits[r&0xf])
}
