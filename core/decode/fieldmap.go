package decode

import (
	"emoji-catalog/core/utils"
)

// FieldMap is a single decoded JSON object. A missing key means the source
// did not send the field, which callers treat as "keep the current value".
type FieldMap map[string]any

// Has reports whether the key is present with a non-null value.
func (f FieldMap) Has(key string) bool {
	v, ok := f[key]
	return ok && v != nil
}

// Int reads an integer field. It reports false when the field is missing,
// null, or has no integer reading.
func (f FieldMap) Int(key string) (int, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	return utils.ToInt(v)
}

// String reads a scalar field as text. It reports false when the field is
// missing, null, or not a scalar.
func (f FieldMap) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	return utils.ToString(v)
}

// IntOr returns the integer field or fallback.
func (f FieldMap) IntOr(key string, fallback int) int {
	if v, ok := f.Int(key); ok {
		return v
	}
	return fallback
}

// StringOr returns the text field or fallback.
func (f FieldMap) StringOr(key, fallback string) string {
	if v, ok := f.String(key); ok {
		return v
	}
	return fallback
}
