package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aapkasathi/backend/controllers"
	"github.com/aapkasathi/backend/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
	r.Use(middleware.RequestID())

	r.GET("/health", controllers.HealthCheck)

	SetupVendorRoutes(r)
	SetupBankAccountRoutes(r)
}

func SetupVendorRoutes(r *gin.Engine) {
	r.POST("/vendors", controllers.CreateVendor)
	r.GET("/vendors", controllers.GetAllVendors)
	r.GET("/vendors/:user_id", controllers.GetVendorByID)
	r.PUT("/vendors/:user_id", controllers.UpdateVendor)
}

func SetupBankAccountRoutes(r *gin.Engine) {
	r.POST("/bank-accounts", controllers.CreateBankAccount)
	r.GET("/bank-accounts", controllers.GetAllBankAccounts)
	r.GET("/bank-accounts/:user_id", controllers.GetBankAccountByID)
	r.PUT("/bank-accounts/:user_id", controllers.UpdateBankAccount)
}
