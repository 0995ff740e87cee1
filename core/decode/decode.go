package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"emoji-catalog/core/errdefs"
	"emoji-catalog/core/utils"
)

// Objects decodes a JSON array of objects into field-maps, preserving order.
func Objects(text string) ([]FieldMap, error) {
	var raw []any
	if err := unmarshal(text, &raw); err != nil {
		return nil, err
	}

	out := make([]FieldMap, 0, len(raw))
	for i, elem := range raw {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, errdefs.Decoding(fmt.Sprintf("element %d", i), "", fmt.Errorf("expected object, got %T", elem))
		}
		out = append(out, FieldMap(obj))
	}
	return out, nil
}

// Strings decodes a JSON array of scalars into their text form, preserving
// order. Positions matter: the index of each string is its identity upstream.
func Strings(text string) ([]string, error) {
	var raw []any
	if err := unmarshal(text, &raw); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for i, elem := range raw {
		s, ok := utils.ToString(elem)
		if !ok {
			return nil, errdefs.Decoding(fmt.Sprintf("element %d", i), "", fmt.Errorf("expected scalar, got %T", elem))
		}
		out = append(out, s)
	}
	return out, nil
}

// Into decodes a single JSON value into v.
func Into(text string, v any) error {
	return unmarshal(text, v)
}

func unmarshal(text string, v any) error {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return &errdefs.DecodingError{Err: err}
	}
	// A body is one JSON value; anything after it is garbage.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &errdefs.DecodingError{Err: errors.New("unexpected data after top-level value")}
	}
	return nil
}
