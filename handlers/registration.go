package handlers

import (
	"net/http"
	"strconv"

	"raceday-backend/dtos"
	"raceday-backend/importer"
	"raceday-backend/models"
	"raceday-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationHandler struct {
	DB *gorm.DB
}

// CreateRegistration handles a single online registration. It shares the
// field grammar with the bulk import (dates, gender, shirt descriptor) and
// applies the same in-transaction cap and stock checks.
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := h.DB.Where("id = ? AND is_active = ?", eventID, true).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req dtos.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	distanceID, err := uuid.Parse(req.DistanceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distance_id"})
		return
	}

	dob, err := importer.ParseDate(req.DateOfBirth)
	if err != nil || dob == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_of_birth, expected DD/MM/YYYY"})
		return
	}

	gender, err := importer.ParseGender(req.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shirtSel, err := importer.ParseShirtSelection(req.ShirtCategory, req.ShirtType, req.ShirtSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var reg models.Registration

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var distance models.Distance
		if err := tx.Where("id = ? AND event_id = ?", distanceID, eventID).First(&distance).Error; err != nil {
			return errHTTP(http.StatusNotFound, "Distance not found")
		}

		var shirt *models.EventShirt
		if shirtSel != nil {
			var s models.EventShirt
			err := tx.Where("event_id = ? AND category = ? AND type = ? AND size = ? AND is_available = ?",
				eventID, shirtSel.Category, shirtSel.Type, shirtSel.Size, true).First(&s).Error
			if err != nil {
				return errHTTP(http.StatusNotFound, "Shirt variant not available for this event")
			}
			shirt = &s
		}

		res := tx.Model(&models.Distance{}).
			Where("id = ? AND (max_participants IS NULL OR current_participants < max_participants)", distance.ID).
			UpdateColumn("current_participants", gorm.Expr("current_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errHTTP(http.StatusConflict, "Distance is full")
		}

		if shirt != nil {
			res := tx.Model(&models.EventShirt{}).
				Where("id = ? AND sold_quantity < stock_quantity", shirt.ID).
				UpdateColumn("sold_quantity", gorm.Expr("sold_quantity + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errHTTP(http.StatusConflict, "Shirt variant is out of stock")
			}
		}

		raceFee, shirtFee, total := importer.ComputeFees(&distance, shirt)

		reg = models.Registration{
			EventID:          eventID,
			DistanceID:       distance.ID,
			FullName:         req.FullName,
			Email:            req.Email,
			Phone:            req.Phone,
			DateOfBirth:      *dob,
			Gender:           gender,
			NationalID:       req.NationalID,
			Address:          req.Address,
			City:             req.City,
			EmergencyContact: req.EmergencyContact,
			EmergencyPhone:   req.EmergencyPhone,
			BloodType:        req.BloodType,
			RaceFee:          raceFee,
			ShirtFee:         shirtFee,
			TotalAmount:      total,
			PaymentStatus:    models.PaymentStatusPending,
			Source:           models.RegistrationSourceOnline,
		}
		if shirt != nil {
			reg.ShirtID = &shirt.ID
			reg.ShirtCategory = shirt.Category
			reg.ShirtType = shirt.Type
			reg.ShirtSize = shirt.Size
		}

		return tx.Create(&reg).Error
	})
	if txErr != nil {
		if he, ok := txErr.(*httpError); ok {
			c.JSON(he.status, gin.H{"error": he.message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create registration"})
		return
	}

	utils.SendRegistrationConfirmation(event.Name, &reg)

	c.JSON(http.StatusCreated, reg)
}

// GetRegistrations lists an event's registrations, paginated, newest first.
func (h *RegistrationHandler) GetRegistrations(c *gin.Context) {
	eventID := c.Param("id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := h.DB.Model(&models.Registration{}).Where("event_id = ?", eventID)
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}
	if status := c.Query("payment_status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count registrations"})
		return
	}

	var registrations []models.Registration
	if err := query.Preload("Distance").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&registrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registrations": registrations,
		"total":         total,
		"page":          page,
		"limit":         limit,
	})
}

func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	id := c.Param("id")

	var reg models.Registration
	if err := h.DB.Preload("Distance").Preload("Shirt").Where("id = ?", id).First(&reg).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	c.JSON(http.StatusOK, reg)
}

// httpError carries a status code out of a transaction closure.
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string { return e.message }

func errHTTP(status int, message string) *httpError {
	return &httpError{status: status, message: message}
}
