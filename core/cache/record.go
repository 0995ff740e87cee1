package cache

import (
	"errors"
	"sort"

	"emoji-catalog/core/decode"
	"emoji-catalog/core/errdefs"

	"github.com/puzpuzpuz/xsync/v3"
)

// KeyField is the field-map key holding a record's identity.
const KeyField = "id"

var errMissingKey = errors.New("required field missing")

// Record is a cached entity identified by an integer id.
type Record interface {
	// ID returns the record identity.
	ID() int
	// Apply merges fields into the record. On error the record must be left
	// as it was.
	Apply(fields decode.FieldMap) error
}

// RecordCache maps ids to live record instances.
type RecordCache[T Record] struct {
	kind    string
	alloc   func() T
	entries *xsync.MapOf[int, T]
}

// NewRecordCache creates an empty cache. kind names the records in errors
// (e.g. "emoji"); alloc returns a blank record to populate on first sight.
func NewRecordCache[T Record](kind string, alloc func() T) *RecordCache[T] {
	return &RecordCache[T]{
		kind:    kind,
		alloc:   alloc,
		entries: xsync.NewMapOf[int, T](),
	}
}

// Kind returns the record kind name.
func (c *RecordCache[T]) Kind() string { return c.kind }

// Reconcile merges fields into the cached record with the same id, or
// creates one. It returns the live instance.
//
// A field-map without an id fails with a decoding error. If applying the
// fields fails, a new record is not stored and an existing one is unchanged.
func (c *RecordCache[T]) Reconcile(fields decode.FieldMap) (T, error) {
	var zero T

	key, ok := fields.Int(KeyField)
	if !ok {
		return zero, errdefs.Decoding(c.kind, KeyField, errMissingKey)
	}

	var applyErr error
	actual, _ := c.entries.Compute(key, func(current T, loaded bool) (T, bool) {
		if loaded {
			applyErr = current.Apply(fields)
			return current, false
		}

		fresh := c.alloc()
		if applyErr = fresh.Apply(fields); applyErr != nil {
			return zero, true
		}
		return fresh, false
	})
	if applyErr != nil {
		return zero, applyErr
	}
	return actual, nil
}

// Lookup returns the record cached under id.
func (c *RecordCache[T]) Lookup(id int) (T, bool) {
	return c.entries.Load(id)
}

// Len returns the number of cached records.
func (c *RecordCache[T]) Len() int {
	return c.entries.Size()
}

// Snapshot returns all cached records ordered by id.
func (c *RecordCache[T]) Snapshot() []T {
	out := make([]T, 0, c.entries.Size())
	c.entries.Range(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out
}
