// Package request decodes translate request bodies into engine overrides.
//
// A body is a single JSON object mapping JSON keys to primitives or null. Keys
// are returned in the order they appear in the body, and each primitive keeps
// the kind it was written with, so 5 and "5" decode to different parameter
// values. A key repeated in the body keeps its first position and takes its
// last value.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/vk/tlvconfig/internal/engine"
	"github.com/vk/tlvconfig/internal/param"
)

// ErrMalformedBody is wrapped by every decoding failure.
var ErrMalformedBody = errors.New("malformed request body")

// Decode parses body into overrides in body order.
func Decode(body []byte) ([]engine.Override, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedBody)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedBody)
	}
	if body[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedBody)
	}

	var overrides []engine.Override
	index := make(map[string]int)

	err := jsonparser.ObjectEach(body, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		k := string(key)
		v, err := decodeValue(value, dataType)
		if err != nil {
			return fmt.Errorf("key %s: %w", k, err)
		}
		if i, seen := index[k]; seen {
			overrides[i].Value = v
			return nil
		}
		index[k] = len(overrides)
		overrides = append(overrides, engine.Override{Key: k, Value: v})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return overrides, nil
}

// decodeValue returns nil for JSON null.
func decodeValue(raw []byte, dataType jsonparser.ValueType) (param.Value, error) {
	var p param.Primitive
	switch dataType {
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Number:
		p = param.Primitive{Type: param.PrimitiveNumber, Raw: string(raw)}
	case jsonparser.Boolean:
		p = param.Primitive{Type: param.PrimitiveBool, Raw: string(raw)}
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, err
		}
		p = param.Primitive{Type: param.PrimitiveString, Raw: s}
	default:
		return nil, fmt.Errorf("unsupported value %s, expected a primitive or null", raw)
	}
	return param.Parse(p)
}
