package domain

import "context"

type BloomRepository interface {
	// Add puts the id into the filter
	Add(ctx context.Context, id string) error

	// Exists reports whether the id may exist.
	// true: maybe present, look it up in the cache or the database
	// false: not in the filter, the database still has the final word
	// ErrBloomNotLoaded: the filter is missing and says nothing
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd is used to load many ids at once
	BulkAdd(ctx context.Context, ids []string) error
}
