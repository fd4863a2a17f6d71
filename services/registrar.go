package services

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aapkasathi/backend/models"
)

// Registrar runs the record-registration protocol: uniqueness check, then
// attachment upload, then the store write, aborting on the first failure.
// The upload and the write are not atomic as a pair; a write failure after a
// successful upload leaves the uploaded blobs unreferenced. That gap is
// accepted and logged (see jobs.OrphanAudit), not compensated.
type Registrar struct {
	Store    RecordStore
	Guard    *UniquenessGuard
	Uploader *AttachmentUploader

	// KeyMutableOnUpdate controls whether an update may change the natural
	// key field. True matches the original behavior: the new value is written
	// without re-checking uniqueness. False rejects such patches upfront.
	KeyMutableOnUpdate bool
}

func NewRegistrar(store RecordStore, blobs BlobStore) *Registrar {
	return &Registrar{
		Store:              store,
		Guard:              &UniquenessGuard{Store: store},
		Uploader:           &AttachmentUploader{Blobs: blobs},
		KeyMutableOnUpdate: true,
	}
}

// Create registers a new record. Order is fixed: duplicate keys are rejected
// before any upload is attempted, and nothing is inserted if any upload fails.
func (r *Registrar) Create(ctx context.Context, ent models.Entity, fields bson.M, files map[string][]byte) (bson.M, error) {
	userID := stringField(fields, "user_id")
	if userID == "" {
		return nil, errf(KindValidation, "user_id is required")
	}
	keyValue := stringField(fields, ent.KeyField)
	if keyValue == "" {
		return nil, errf(KindValidation, "%s is required", ent.KeyField)
	}

	available, err := r.Guard.CheckUnique(ctx, ent.Collection, ent.KeyField, keyValue)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, errf(KindDuplicateKey, "%s %q is already registered", ent.KeyField, keyValue)
	}

	urls, err := r.Uploader.Upload(ctx, ent, userID, files)
	if err != nil {
		return nil, err
	}

	doc := mergeFields(fields, urls)
	row, err := r.Store.Insert(ctx, ent.Collection, doc)
	if err != nil {
		logOrphans(ent, urls)
		return nil, wrap(KindStoreWriteFailed, "failed to insert "+ent.Category+" record", err)
	}
	return row, nil
}

// Update patches the record identified by userID. Slots without a new file
// are left untouched; supplied fields replace stored ones. There is no
// uniqueness re-check when the natural key changes (see KeyMutableOnUpdate).
func (r *Registrar) Update(ctx context.Context, ent models.Entity, userID string, fields bson.M, files map[string][]byte) (bson.M, error) {
	if userID == "" {
		return nil, errf(KindValidation, "user_id is required")
	}
	if !r.KeyMutableOnUpdate {
		if v := stringField(fields, ent.KeyField); v != "" {
			return nil, errf(KindValidation, "%s cannot be changed after registration", ent.KeyField)
		}
	}

	urls, err := r.Uploader.Upload(ctx, ent, userID, files)
	if err != nil {
		return nil, err
	}

	patch := mergeFields(fields, urls)
	row, err := r.Store.Update(ctx, ent.Collection, bson.M{"user_id": userID}, patch)
	if err != nil {
		if errors.Is(err, ErrNoRow) {
			return nil, errf(KindNotFound, "no %s record for user_id %q", ent.Category, userID)
		}
		logOrphans(ent, urls)
		return nil, wrap(KindStoreWriteFailed, "failed to update "+ent.Category+" record", err)
	}
	return row, nil
}

// ListAll returns every record in the entity's collection.
func (r *Registrar) ListAll(ctx context.Context, ent models.Entity) ([]bson.M, error) {
	rows, err := r.Store.FindAll(ctx, ent.Collection)
	if err != nil {
		return nil, wrap(KindStoreUnavailable, "failed to list "+ent.Collection, err)
	}
	return rows, nil
}

// GetByKey fetches a single record by user_id, normalizing the store's
// zero-row result to KindNotFound.
func (r *Registrar) GetByKey(ctx context.Context, ent models.Entity, userID string) (bson.M, error) {
	row, err := r.Store.FindOne(ctx, ent.Collection, bson.M{"user_id": userID})
	if err != nil {
		if errors.Is(err, ErrNoRow) {
			return nil, errf(KindNotFound, "no %s record for user_id %q", ent.Category, userID)
		}
		return nil, wrap(KindStoreUnavailable, "failed to fetch "+ent.Category+" record", err)
	}
	return row, nil
}

func stringField(fields bson.M, name string) string {
	v, _ := fields[name].(string)
	return v
}

// mergeFields copies the supplied fields and lays the uploaded URLs on top,
// so a freshly uploaded file always wins over a caller-supplied URL value.
func mergeFields(fields bson.M, urls map[string]string) bson.M {
	doc := make(bson.M, len(fields)+len(urls))
	for k, v := range fields {
		doc[k] = v
	}
	for slot, url := range urls {
		doc[slot] = url
	}
	return doc
}

func logOrphans(ent models.Entity, urls map[string]string) {
	for slot, url := range urls {
		log.Printf("orphaned %s attachment %s: %s (uploaded but record write failed)", ent.Category, slot, url)
	}
}
