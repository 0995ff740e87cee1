package model

import (
	"errors"
	"net/url"

	"emoji-catalog/core/decode"
	"emoji-catalog/core/errdefs"
)

var errNotAbsolute = errors.New("URL must be absolute")

// applyURL returns the URL to store for key. Text equal to the current
// URL's string form keeps the current value without re-parsing. A missing
// field keeps current; required fields must resolve to a non-nil URL.
func applyURL(record string, fields decode.FieldMap, key string, current *url.URL, required bool) (*url.URL, error) {
	text, ok := fields.String(key)
	if !ok {
		if required && current == nil {
			return nil, errdefs.Decoding(record, key, errors.New("required field missing"))
		}
		return current, nil
	}
	if current != nil && current.String() == text {
		return current, nil
	}
	if text == "" && !required {
		return nil, nil
	}

	u, err := url.Parse(text)
	if err != nil {
		return nil, errdefs.Decoding(record, key, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errdefs.Decoding(record, key, errNotAbsolute)
	}
	return u, nil
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}
