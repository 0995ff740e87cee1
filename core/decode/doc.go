// Package decode turns JSON response bodies into the shapes the caches
// consume: an ordered list of field-maps for record collections, an ordered
// list of strings for positional collections, or a typed value for single
// objects.
//
// Numbers are decoded as json.Number so integer ids survive untouched, and
// FieldMap readers accept the loose typing of the upstream API (a count may
// be sent as "12" or 12).
//
// Every failure is reported as an *errdefs.DecodingError.
package decode
