package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aapkasathi/backend/models"
)

// CreateVendor registers a new vendor from a multipart form. The phone number
// must not already be registered; photos are optional.
func CreateVendor(c *gin.Context) {
	fields, files, err := readForm(c, models.VendorEntity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse multipart form: " + err.Error()})
		return
	}

	row, err := registrar.Create(c.Request.Context(), models.VendorEntity, fields, files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func GetAllVendors(c *gin.Context) {
	rows, err := registrar.ListAll(c.Request.Context(), models.VendorEntity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetVendorByID(c *gin.Context) {
	row, err := registrar.GetByKey(c.Request.Context(), models.VendorEntity, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// UpdateVendor patches an existing vendor. Photo slots without a new file are
// left as they are.
func UpdateVendor(c *gin.Context) {
	fields, files, err := readForm(c, models.VendorEntity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse multipart form: " + err.Error()})
		return
	}

	row, err := registrar.Update(c.Request.Context(), models.VendorEntity, c.Param("user_id"), fields, files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
