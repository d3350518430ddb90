package handlers

import (
	"net/http"
	"strings"

	"raceday-backend/models"
	"raceday-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShirtHandler struct {
	DB *gorm.DB
}

var validShirtCategories = map[models.ShirtCategory]bool{
	models.ShirtCategoryMale:   true,
	models.ShirtCategoryFemale: true,
	models.ShirtCategoryKid:    true,
}

var validShirtTypes = map[models.ShirtType]bool{
	models.ShirtTypeShortSleeve: true,
	models.ShirtTypeTankTop:     true,
}

func (h *ShirtHandler) GetShirts(c *gin.Context) {
	eventID := c.Param("id")

	var shirts []models.EventShirt
	if err := h.DB.Where("event_id = ?", eventID).Order("category, type, size").Find(&shirts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shirts"})
		return
	}

	c.JSON(http.StatusOK, shirts)
}

func (h *ShirtHandler) CreateShirt(c *gin.Context) {
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
		Category        string  `json:"category" binding:"required"`
		Type            string  `json:"type" binding:"required"`
		Size            string  `json:"size" binding:"required"`
		Price           float64 `json:"price" binding:"min=0"`
		StandalonePrice float64 `json:"standalone_price" binding:"min=0"`
		StockQuantity   int     `json:"stock_quantity" binding:"min=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	category := models.ShirtCategory(strings.ToUpper(req.Category))
	shirtType := models.ShirtType(strings.ToUpper(req.Type))
	size := strings.ToUpper(strings.TrimSpace(req.Size))

	if !validShirtCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be one of MALE, FEMALE, KID"})
		return
	}
	if !validShirtTypes[shirtType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of SHORT_SLEEVE, TANK_TOP"})
		return
	}

	var existing models.EventShirt
	if err := h.DB.Where("event_id = ? AND category = ? AND type = ? AND size = ?",
		eventID, category, shirtType, size).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Shirt variant already exists for the event"})
		return
	}

	shirt := models.EventShirt{
		ID:              uuid.New(),
		EventID:         eventID,
		Category:        category,
		Type:            shirtType,
		Size:            size,
		Price:           req.Price,
		StandalonePrice: req.StandalonePrice,
		StockQuantity:   req.StockQuantity,
		IsAvailable:     true,
	}

	if err := h.DB.Create(&shirt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shirt"})
		return
	}

	c.JSON(http.StatusCreated, shirt)
}

func (h *ShirtHandler) UpdateShirt(c *gin.Context) {
	id := c.Param("id")
	var shirt models.EventShirt

	if err := h.DB.Where("id = ?", id).First(&shirt).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shirt not found"})
		return
	}

	var req struct {
		Price           *float64 `json:"price"`
		StandalonePrice *float64 `json:"standalone_price"`
		StockQuantity   *int     `json:"stock_quantity"`
		IsAvailable     *bool    `json:"is_available"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Price != nil {
		shirt.Price = *req.Price
	}
	if req.StandalonePrice != nil {
		shirt.StandalonePrice = *req.StandalonePrice
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < shirt.SoldQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock_quantity cannot be below sold quantity"})
			return
		}
		shirt.StockQuantity = *req.StockQuantity
	}
	if req.IsAvailable != nil {
		shirt.IsAvailable = *req.IsAvailable
	}

	if err := h.DB.Save(&shirt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shirt"})
		return
	}

	c.JSON(http.StatusOK, shirt)
}

func (h *ShirtHandler) DeleteShirt(c *gin.Context) {
	id := c.Param("id")

	var registrationCount int64
	if err := h.DB.Model(&models.Registration{}).Where("shirt_id = ?", id).Count(&registrationCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check shirt dependencies"})
		return
	}

	if registrationCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":              "Cannot delete shirt variant with registrations",
			"registration_count": registrationCount,
		})
		return
	}

	if err := h.DB.Delete(&models.EventShirt{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shirt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shirt deleted successfully"})
}
