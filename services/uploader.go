package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/aapkasathi/backend/models"
)

// AttachmentUploader writes a set of named file buffers to the blob store
// under deterministic paths and returns their public URLs.
type AttachmentUploader struct {
	Blobs BlobStore
}

// AttachmentPath derives the stored object path for one slot:
// {userID}/{category}/{fixed filename per slot}.
func AttachmentPath(userID, category string, policy models.SlotPolicy) string {
	return fmt.Sprintf("%s/%s/%s", userID, category, policy.Filename)
}

// Upload stores every populated slot and returns slot -> public URL. Slots are
// independent, so they upload concurrently within the request. If any slot
// fails the whole call fails; slots that finished before the failure have
// already been written and stay in the bucket (logged so operators can
// reconcile, never cleaned up here).
func (u *AttachmentUploader) Upload(ctx context.Context, ent models.Entity, userID string, files map[string][]byte) (map[string]string, error) {
	if len(files) == 0 {
		return map[string]string{}, nil
	}
	for slot := range files {
		if _, ok := ent.Slots[slot]; !ok {
			return nil, errf(KindValidation, "unknown attachment slot %q for %s", slot, ent.Category)
		}
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		urls     = make(map[string]string, len(files))
		written  []string
		firstErr error
	)
	for slot, data := range files {
		policy := ent.Slots[slot]
		path := AttachmentPath(userID, ent.Category, policy)
		wg.Add(1)
		go func(slot, path string, data []byte, contentType string) {
			defer wg.Done()
			err := u.Blobs.Put(ctx, path, data, contentType)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			written = append(written, path)
			urls[slot] = u.Blobs.PublicURL(path)
		}(slot, path, data, policy.ContentType)
	}
	wg.Wait()

	if firstErr != nil {
		for _, path := range written {
			log.Printf("attachment %s uploaded before failure, may be orphaned", path)
		}
		return nil, wrap(KindUploadFailed, "failed to upload attachment for "+ent.Category, firstErr)
	}
	return urls, nil
}
