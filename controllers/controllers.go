package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aapkasathi/backend/models"
	"github.com/aapkasathi/backend/services"
)

const maxMultipartMemory = 32 << 20

var registrar *services.Registrar

// InitServices hands the controllers the registrar built at startup.
func InitServices(r *services.Registrar) {
	registrar = r
}

// readForm parses the multipart request into plain fields and the file
// buffers for whichever of the entity's attachment slots were supplied.
func readForm(c *gin.Context, ent models.Entity) (bson.M, map[string][]byte, error) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, err
	}

	fields := bson.M{}
	for name, values := range c.Request.MultipartForm.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	files := map[string][]byte{}
	for slot := range ent.Slots {
		file, _, err := c.Request.FormFile(slot)
		if err == http.ErrMissingFile {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, nil, err
		}
		files[slot] = data
	}
	return fields, files, nil
}

// respondError maps the registration error taxonomy onto HTTP statuses:
// client-class failures are 400, upload and write failures are 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindValidation, services.KindDuplicateKey, services.KindNotFound, services.KindStoreUnavailable:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
