package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type RegistrationSource string

const (
	RegistrationSourceOnline RegistrationSource = "ONLINE"
	RegistrationSourceExcel  RegistrationSource = "EXCEL"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Registration struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	Event       Event     `gorm:"foreignKey:EventID" json:"-"`
	DistanceID  uuid.UUID `gorm:"type:uuid;not null;index" json:"distance_id"`
	Distance    Distance  `gorm:"foreignKey:DistanceID" json:"distance,omitempty"`

	FullName         string    `gorm:"not null" json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `gorm:"not null" json:"phone"`
	DateOfBirth      time.Time `gorm:"not null" json:"date_of_birth"`
	Gender           Gender    `gorm:"not null" json:"gender"`
	NationalID       string    `json:"national_id"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	EmergencyContact string    `json:"emergency_contact"`
	EmergencyPhone   string    `json:"emergency_phone"`
	BloodType        string    `json:"blood_type"`
	BibNumber        string    `json:"bib_number"` // passthrough only, never generated here

	ShirtID       *uuid.UUID    `gorm:"type:uuid;index" json:"shirt_id,omitempty"`
	Shirt         *EventShirt   `gorm:"foreignKey:ShirtID" json:"shirt,omitempty"`
	ShirtCategory ShirtCategory `json:"shirt_category,omitempty"`
	ShirtType     ShirtType     `json:"shirt_type,omitempty"`
	ShirtSize     string        `json:"shirt_size,omitempty"`

	RaceFee     float64 `gorm:"not null" json:"race_fee"`
	ShirtFee    float64 `gorm:"default:0" json:"shirt_fee"`
	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	PaymentStatus PaymentStatus      `gorm:"default:PENDING" json:"payment_status"`
	Source        RegistrationSource `gorm:"default:ONLINE" json:"source"`
	ImportBatchID *uuid.UUID         `gorm:"type:uuid;index" json:"import_batch_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
