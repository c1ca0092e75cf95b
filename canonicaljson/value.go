package canonicaljson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// kind classifies a parsed value into the six-variant value model the
// serializer operates on. The adapter is the only place host-library types
// are inspected; the serializer itself switches exhaustively on kind.
type kind int

const (
	kindInvalid kind = iota
	kindNull
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

func classify(v any) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case string:
		return kindString
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return kindNumber
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	default:
		return kindInvalid
	}
}

// decodeValue parses a single JSON value with number literals preserved as
// json.Number. Trailing content after the value is rejected. Duplicate
// object keys are undefined upstream behavior; encoding/json keeps the last
// occurrence.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrInvalidInput, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidInput)
	}
	return v, nil
}
