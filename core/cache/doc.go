// Package cache keeps the process-lifetime state of the catalog client and
// reconciles freshly decoded records into it.
//
// Two shapes of identity exist upstream, and each gets its own cache:
//
// # Record Cache
//
// RecordCache holds records keyed by their integer id (emojis, packs).
// Reconcile either allocates a record for an unseen id or applies the
// incoming field-map onto the record already cached under that id, so at
// most one live instance exists per id and pointers handed out earlier stay
// valid. Insert-or-update is atomic per key.
//
// # Indexed Cache
//
// IndexedCache holds categories, whose only upstream address is their
// position in the listing. Identity is the name. When a name shows up at a
// different position, the two occupied slots are swapped; when a new name
// takes a position, the previous occupant moves to the end of the sequence.
// No category is ever dropped.
//
// Caches are created explicitly and owned by their caller, which keeps test
// instances isolated from each other. Both are safe for concurrent use;
// concurrent reconciliations of the same kind may interleave in any order.
package cache
