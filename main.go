package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/aapkasathi/backend/controllers"
	"github.com/aapkasathi/backend/database"
	"github.com/aapkasathi/backend/gcs"
	"github.com/aapkasathi/backend/jobs"
	"github.com/aapkasathi/backend/routes"
	"github.com/aapkasathi/backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: error loading .env file:", err)
	}

	gcs.InitGCS()
	defer gcs.Close()

	db.InitDB()
	defer db.DisconnectDB()

	records := db.NewStore()
	blobs := gcs.NewStore(gcs.BucketName)
	registrar := services.NewRegistrar(records, blobs)
	controllers.InitServices(registrar)

	// Nightly sweep reporting uploaded photos no record references.
	sweepSpec := os.Getenv("ORPHAN_SWEEP_SPEC")
	if sweepSpec == "" {
		sweepSpec = "0 3 * * *"
	}
	scheduler := cron.New()
	if _, err := scheduler.AddJob(sweepSpec, &jobs.OrphanAudit{Blobs: blobs, Store: records}); err != nil {
		log.Fatal("Failed to schedule orphan audit:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Starting server on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
