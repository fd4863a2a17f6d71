package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoRow is returned by RecordStore implementations when a lookup or update
// matches nothing. Callers translate it into KindNotFound where appropriate.
var ErrNoRow = errors.New("no matching row")

// RecordStore is the tabular store the registrar writes records to.
// The production implementation lives in the database package (MongoDB);
// tests substitute in-memory fakes.
type RecordStore interface {
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	FindAll(ctx context.Context, collection string) ([]bson.M, error)
	Insert(ctx context.Context, collection string, doc bson.M) (bson.M, error)
	Update(ctx context.Context, collection string, filter bson.M, patch bson.M) (bson.M, error)
}

// BlobStore is the keyed binary store attachments go to. Put overwrites the
// object at path unconditionally; PublicURL must be derivable without I/O.
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}
