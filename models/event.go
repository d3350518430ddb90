package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	EventDate   *time.Time     `json:"event_date,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	Distances   []Distance     `gorm:"foreignKey:EventID" json:"distances,omitempty"`
	Shirts      []EventShirt   `gorm:"foreignKey:EventID" json:"shirts,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
