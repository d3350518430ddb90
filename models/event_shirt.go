package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShirtCategory string

const (
	ShirtCategoryMale   ShirtCategory = "MALE"
	ShirtCategoryFemale ShirtCategory = "FEMALE"
	ShirtCategoryKid    ShirtCategory = "KID"
)

type ShirtType string

const (
	ShirtTypeShortSleeve ShirtType = "SHORT_SLEEVE"
	ShirtTypeTankTop     ShirtType = "TANK_TOP"
)

type EventShirt struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"event_id"`
	Event           Event          `gorm:"foreignKey:EventID" json:"-"`
	Category        ShirtCategory  `gorm:"not null" json:"category"`
	Type            ShirtType      `gorm:"not null" json:"type"`
	Size            string         `gorm:"not null" json:"size"` // uppercase, event-defined size run
	Price           float64        `gorm:"default:0" json:"price"`
	StandalonePrice float64        `gorm:"default:0" json:"standalone_price"`
	StockQuantity   int            `gorm:"default:0" json:"stock_quantity"`
	SoldQuantity    int            `gorm:"default:0" json:"sold_quantity"`
	IsAvailable     bool           `gorm:"default:true" json:"is_available"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *EventShirt) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Remaining returns the unsold stock for the variant.
func (s *EventShirt) Remaining() int {
	return s.StockQuantity - s.SoldQuantity
}

// Label returns a human-readable variant descriptor for error messages.
func (s *EventShirt) Label() string {
	return fmt.Sprintf("%s / %s / %s", s.Category, s.Type, s.Size)
}
