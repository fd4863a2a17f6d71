package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aapkasathi/backend/models"
)

// CreateBankAccount registers a new bank account. The account number must not
// already be registered; the passbook photo is optional.
func CreateBankAccount(c *gin.Context) {
	fields, files, err := readForm(c, models.BankAccountEntity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse multipart form: " + err.Error()})
		return
	}

	row, err := registrar.Create(c.Request.Context(), models.BankAccountEntity, fields, files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func GetAllBankAccounts(c *gin.Context) {
	rows, err := registrar.ListAll(c.Request.Context(), models.BankAccountEntity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetBankAccountByID(c *gin.Context) {
	row, err := registrar.GetByKey(c.Request.Context(), models.BankAccountEntity, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func UpdateBankAccount(c *gin.Context) {
	fields, files, err := readForm(c, models.BankAccountEntity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse multipart form: " + err.Error()})
		return
	}

	row, err := registrar.Update(c.Request.Context(), models.BankAccountEntity, c.Param("user_id"), fields, files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
