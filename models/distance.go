package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Distance struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"event_id"`
	Event               Event          `gorm:"foreignKey:EventID" json:"-"`
	Name                string         `gorm:"not null" json:"name"` // e.g. "5KM", "10KM", "21KM"
	Price               float64        `gorm:"not null" json:"price"`
	CurrentParticipants int            `gorm:"default:0" json:"current_participants"`
	MaxParticipants     *int           `json:"max_participants,omitempty"` // nil means uncapped
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *Distance) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// IsFull reports whether the distance has reached its participant cap.
func (d *Distance) IsFull() bool {
	return d.MaxParticipants != nil && d.CurrentParticipants >= *d.MaxParticipants
}
