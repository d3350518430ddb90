package handlers

import (
	"net/http"

	"raceday-backend/models"
	"raceday-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistanceHandler struct {
	DB *gorm.DB
}

func (h *DistanceHandler) GetDistances(c *gin.Context) {
	eventID := c.Param("id")

	var distances []models.Distance
	if err := h.DB.Where("event_id = ?", eventID).Order("price").Find(&distances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch distances"})
		return
	}

	c.JSON(http.StatusOK, distances)
}

func (h *DistanceHandler) CreateDistance(c *gin.Context) {
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

	var req struct {
		Name            string  `json:"name" binding:"required"`
		Price           float64 `json:"price" binding:"required,min=0"`
		MaxParticipants *int    `json:"max_participants"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	// Distance names are matched case-insensitively during import, so two
	// distances differing only by case would make rows ambiguous.
	var existing models.Distance
	if err := h.DB.Where("event_id = ? AND LOWER(name) = LOWER(?)", eventID, req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Distance with this name already exists for the event"})
		return
	}

	distance := models.Distance{
		ID:              uuid.New(),
		EventID:         eventID,
		Name:            req.Name,
		Price:           req.Price,
		MaxParticipants: req.MaxParticipants,
	}

	if err := h.DB.Create(&distance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create distance"})
		return
	}

	c.JSON(http.StatusCreated, distance)
}

func (h *DistanceHandler) UpdateDistance(c *gin.Context) {
	id := c.Param("id")
	var distance models.Distance

	if err := h.DB.Where("id = ?", id).First(&distance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Distance not found"})
		return
	}

	var req struct {
		Name            *string  `json:"name"`
		Price           *float64 `json:"price"`
		MaxParticipants *int     `json:"max_participants"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		distance.Name = *req.Name
	}
	if req.Price != nil {
		distance.Price = *req.Price
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants < distance.CurrentParticipants {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_participants cannot be below current participant count"})
			return
		}
		distance.MaxParticipants = req.MaxParticipants
	}

	if err := h.DB.Save(&distance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update distance"})
		return
	}

	c.JSON(http.StatusOK, distance)
}

func (h *DistanceHandler) DeleteDistance(c *gin.Context) {
	id := c.Param("id")

	var registrationCount int64
	if err := h.DB.Model(&models.Registration{}).Where("distance_id = ?", id).Count(&registrationCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check distance dependencies"})
		return
	}

	if registrationCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":              "Cannot delete distance with registrations",
			"registration_count": registrationCount,
		})
		return
	}

	if err := h.DB.Delete(&models.Distance{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete distance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Distance deleted successfully"})
}
