package handlers

import (
	"errors"
	"log"
	"net/http"

	"raceday-backend/dtos"
	"raceday-backend/importer"
	"raceday-backend/models"
	"raceday-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportHandler struct {
	DB *gorm.DB
}

// ImportRegistrations ingests an uploaded Excel workbook of athletes for an
// event. Processing is synchronous and sequential: the response carries the
// terminal batch summary and the first few row errors; the full error ledger
// stays on the batch record.
func (h *ImportHandler) ImportRegistrations(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := h.DB.Where("id = ?", eventID).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}

	if err := utils.ValidateSpreadsheetUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	var uploadedBy uuid.UUID
	if id, exists := c.Get("user_id"); exists {
		uploadedBy = id.(uuid.UUID)
	}

	batch, err := importer.New(h.DB).Run(c.Request.Context(), &event, uploadedBy, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, importer.ErrMalformedFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Import for event %s failed: %v", event.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	utils.SendImportSummary(event.Name, batch)

	c.JSON(http.StatusOK, dtos.NewImportResponse(batch, importer.ErrorSample(batch, importer.ErrorSampleSize)))
}

// GetImportBatch returns one batch including its full error ledger.
func (h *ImportHandler) GetImportBatch(c *gin.Context) {
	id := c.Param("id")

	var batch models.ImportBatch
	if err := h.DB.Where("id = ?", id).First(&batch).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Import batch not found"})
		return
	}

	c.JSON(http.StatusOK, batch)
}

// GetImportBatches lists an event's import batches, newest first.
func (h *ImportHandler) GetImportBatches(c *gin.Context) {
	eventID := c.Param("id")

	var batches []models.ImportBatch
	if err := h.DB.Where("event_id = ?", eventID).Order("created_at DESC").Find(&batches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch import batches"})
		return
	}

	c.JSON(http.StatusOK, batches)
}
