package services

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore is an in-memory RecordStore with call counting so tests can
// assert which protocol steps ran.
type fakeStore struct {
	rows map[string][]bson.M

	findErr   error
	insertErr error
	updateErr error

	findCalls   int
	insertCalls int
	updateCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string][]bson.M{}}
}

func rowMatches(row, filter bson.M) bool {
	for k, v := range filter {
		if row[k] != v {
			return false
		}
	}
	return true
}

func (s *fakeStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, row := range s.rows[collection] {
		if rowMatches(row, filter) {
			return row, nil
		}
	}
	return nil, ErrNoRow
}

func (s *fakeStore) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.rows[collection], nil
}

func (s *fakeStore) Insert(ctx context.Context, collection string, doc bson.M) (bson.M, error) {
	s.insertCalls++
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	row := make(bson.M, len(doc))
	for k, v := range doc {
		row[k] = v
	}
	s.rows[collection] = append(s.rows[collection], row)
	return row, nil
}

func (s *fakeStore) Update(ctx context.Context, collection string, filter bson.M, patch bson.M) (bson.M, error) {
	s.updateCalls++
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for _, row := range s.rows[collection] {
		if rowMatches(row, filter) {
			for k, v := range patch {
				row[k] = v
			}
			return row, nil
		}
	}
	return nil, ErrNoRow
}

// fakeBlobs is an in-memory BlobStore. Paths listed in failPaths reject the
// put, everything else is stored.
type fakeBlobs struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	failPaths map[string]bool
	puts      int
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{
		objects:   map[string][]byte{},
		types:     map[string]string{},
		failPaths: map[string]bool{},
	}
}

func (b *fakeBlobs) Put(ctx context.Context, path string, data []byte, contentType string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.puts++
	if b.failPaths[path] {
		return errors.New("simulated put failure")
	}
	b.objects[path] = data
	b.types[path] = contentType
	return nil
}

func (b *fakeBlobs) PublicURL(path string) string {
	return "https://blobs.test/" + path
}
