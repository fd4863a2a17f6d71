package jobs

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aapkasathi/backend/models"
	"github.com/aapkasathi/backend/services"
)

// Blobs is the slice of the blob store the audit needs: enumerate objects and
// reconstruct their public URLs.
type Blobs interface {
	List(ctx context.Context, prefix string) ([]string, error)
	PublicURL(path string) string
}

// OrphanAudit periodically scans the photo bucket for objects no record
// references. Uploads that succeeded before a failed record write leave such
// blobs behind; the audit only reports them, reconciliation stays manual.
type OrphanAudit struct {
	Blobs Blobs
	Store services.RecordStore
}

// Run performs one sweep. Wired to a cron schedule in main.
func (a *OrphanAudit) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	paths, err := a.Blobs.List(ctx, "")
	if err != nil {
		log.Printf("orphan audit: failed to list bucket: %v", err)
		return
	}

	orphans := 0
	for _, path := range paths {
		referenced, ok := a.referenced(ctx, path)
		if !ok {
			continue
		}
		if !referenced {
			orphans++
			log.Printf("orphan audit: %s is not referenced by any record", path)
		}
	}
	log.Printf("orphan audit: scanned %d objects, %d orphaned", len(paths), orphans)
}

// referenced reports whether some record's slot field holds the object's
// public URL. Paths that don't follow the user/category/filename scheme are
// skipped (ok=false).
func (a *OrphanAudit) referenced(ctx context.Context, path string) (referenced, ok bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 3 {
		return false, false
	}
	ent, ok := models.EntityForCategory(parts[1])
	if !ok {
		return false, false
	}
	slot, ok := ent.SlotForFilename(parts[2])
	if !ok {
		return false, false
	}

	_, err := a.Store.FindOne(ctx, ent.Collection, bson.M{slot: a.Blobs.PublicURL(path)})
	if err == nil {
		return true, true
	}
	if errors.Is(err, services.ErrNoRow) {
		return false, true
	}
	log.Printf("orphan audit: lookup for %s failed: %v", path, err)
	return false, false
}
