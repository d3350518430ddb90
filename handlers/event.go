package handlers

import (
	"net/http"

	"raceday-backend/importer"
	"raceday-backend/models"
	"raceday-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventHandler struct {
	DB *gorm.DB
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	var events []models.Event
	if err := h.DB.Preload("Distances").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id := c.Param("id")
	var event models.Event

	if err := h.DB.Preload("Distances").Preload("Shirts").Where("id = ?", id).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Location    string `json:"location"`
		EventDate   string `json:"event_date"` // DD/MM/YYYY
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	event := models.Event{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		IsActive:    true,
	}

	if req.EventDate != "" {
		date, err := importer.ParseDate(req.EventDate)
		if err != nil || date == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_date, expected DD/MM/YYYY"})
			return
		}
		event.EventDate = date
	}

	if err := h.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")
	var event models.Event

	if err := h.DB.Where("id = ?", id).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		EventDate   *string `json:"event_date"`
		IsActive    *bool   `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	if req.EventDate != nil {
		date, err := importer.ParseDate(*req.EventDate)
		if err != nil || date == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_date, expected DD/MM/YYYY"})
			return
		}
		event.EventDate = date
	}

	if err := h.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	var registrationCount int64
	if err := h.DB.Model(&models.Registration{}).Where("event_id = ?", id).Count(&registrationCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check event dependencies"})
		return
	}

	if registrationCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":              "Cannot delete event with registrations",
			"registration_count": registrationCount,
		})
		return
	}

	if err := h.DB.Delete(&models.Event{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
