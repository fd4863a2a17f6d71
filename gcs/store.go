package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// Store adapts the global GCS client to the services.BlobStore contract for
// one bucket. Objects are publicly readable; writes overwrite in place.
type Store struct {
	Bucket string
}

func NewStore(bucket string) *Store {
	return &Store{Bucket: bucket}
}

// Put writes data at path, replacing whatever was there before.
func (s *Store) Put(ctx context.Context, path string, data []byte, contentType string) error {
	writer := Client.Bucket(s.Bucket).Object(path).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write object %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", path, err)
	}
	return nil
}

// PublicURL derives the public-read URL for path without any I/O.
func (s *Store) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.Bucket, path)
}

// List returns every object path in the bucket under prefix. Used by the
// orphan audit sweep, not by the request path.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var paths []string
	it := Client.Bucket(s.Bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.Bucket, err)
		}
		paths = append(paths, attrs.Name)
	}
	return paths, nil
}
