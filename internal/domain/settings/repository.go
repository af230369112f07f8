package settings

import "context"

// StorageKey is the single fixed key the serialized preferences record
// lives under
const StorageKey = "appSettings"

// Repository persists the raw serialized preferences record in the
// durable local store. Load returns shared.ErrNotFound when no record
// has been written yet.
type Repository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, record []byte) error
}
