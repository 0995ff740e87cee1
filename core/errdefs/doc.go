// Package errdefs defines the failure kinds surfaced by the catalog client.
//
// Three kinds exist and they are never conflated:
//   - Transport: the remote service could not be reached or answered with a
//     non-success status.
//   - Decoding: the response body was not valid JSON, or a record inside it
//     was missing a required field or carried an invalid value.
//   - NotFound: a lookup that followed a full refresh found no record with
//     the requested identifier.
//
// Each kind has a sentinel (ErrTransport, ErrDecoding, ErrNotFound) and a
// typed error carrying context. Typed errors match their sentinel through
// errors.Is, so callers can branch without caring about the concrete type:
//
//	if errors.Is(err, errdefs.ErrNotFound) {
//	    // the record does not exist upstream
//	}
package errdefs
