package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// UniquenessGuard checks a candidate natural-key value against existing
// records before a create is allowed. Pure read, no side effects.
type UniquenessGuard struct {
	Store RecordStore
}

// CheckUnique reports whether no record in collection already holds keyValue
// in keyField. A failing query is a KindStoreUnavailable error, distinct from
// finding a conflicting row.
func (g *UniquenessGuard) CheckUnique(ctx context.Context, collection, keyField, keyValue string) (bool, error) {
	_, err := g.Store.FindOne(ctx, collection, bson.M{keyField: keyValue})
	if err == nil {
		return false, nil
	}
	if errors.Is(err, ErrNoRow) {
		return true, nil
	}
	return false, wrap(KindStoreUnavailable, "failed to check "+keyField+" uniqueness", err)
}
