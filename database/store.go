package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aapkasathi/backend/services"
)

// Store adapts the global MongoDB client to the services.RecordStore
// contract. Collections play the role of tables; rows are bson documents.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	var row bson.M
	err := OpenCollection(collection).FindOne(ctx, filter).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNoRow
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Store) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := OpenCollection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []bson.M{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert writes doc and returns it with the generated _id attached, so the
// caller gets the stored row back without a second read.
func (s *Store) Insert(ctx context.Context, collection string, doc bson.M) (bson.M, error) {
	result, err := OpenCollection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	row := make(bson.M, len(doc)+1)
	for k, v := range doc {
		row[k] = v
	}
	row["_id"] = result.InsertedID
	return row, nil
}

// Update applies patch as a $set to the first row matching filter and returns
// the row as stored afterwards. services.ErrNoRow when nothing matched.
func (s *Store) Update(ctx context.Context, collection string, filter bson.M, patch bson.M) (bson.M, error) {
	// Mongo rejects an empty $set; a patch with nothing in it is just a read.
	if len(patch) == 0 {
		return s.FindOne(ctx, collection, filter)
	}
	result, err := OpenCollection(collection).UpdateOne(ctx, filter, bson.M{"$set": patch})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, services.ErrNoRow
	}
	// The patch may have rewritten a field the filter matched on, so re-read
	// with patched values taking precedence.
	refetch := make(bson.M, len(filter))
	for k, v := range filter {
		if nv, ok := patch[k]; ok {
			refetch[k] = nv
		} else {
			refetch[k] = v
		}
	}
	return s.FindOne(ctx, collection, refetch)
}
