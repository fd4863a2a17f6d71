package gcs

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/storage"
)

// Client is the process-wide Cloud Storage connection, initialized once at
// startup and shared by every request.
var Client *storage.Client

// BucketName holds the photo bucket, resolved from the environment at init.
var BucketName string

// InitGCS connects to Google Cloud Storage and verifies the photo bucket is
// reachable before the server starts taking traffic.
func InitGCS() {
	ctx := context.Background()
	var err error
	Client, err = storage.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Google Cloud Storage: %v", err)
	}
	log.Println("Connected to Google Cloud Storage")

	BucketName = os.Getenv("GCS_BUCKET")
	if BucketName == "" {
		BucketName = "photos"
	}
	if _, err = Client.Bucket(BucketName).Attrs(ctx); err != nil {
		log.Fatalf("Cannot access bucket %s: %v", BucketName, err)
	}
	log.Printf("Bucket %s is ready", BucketName)
}

func Close() {
	if Client != nil {
		Client.Close()
	}
}
