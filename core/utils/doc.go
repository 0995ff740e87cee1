// Package utils provides loose conversions for values decoded from JSON.
// The catalog API is not strict about types (ids and counts sometimes arrive
// as strings), so field readers go through these helpers instead of type
// asserting directly.
package utils
