package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportStatus string

const (
	ImportStatusProcessing ImportStatus = "PROCESSING"
	ImportStatusCompleted  ImportStatus = "COMPLETED"
	ImportStatusPartial    ImportStatus = "PARTIAL"
	ImportStatusFailed     ImportStatus = "FAILED"
)

// RowError records one failed spreadsheet row: the display row number in the
// uploaded file (header = row 1), the raw cell values keyed by column header,
// and the reason the row was rejected.
type RowError struct {
	Row   int               `json:"row"`
	Data  map[string]string `json:"data"`
	Error string            `json:"error"`
}

// RowErrorList is the batch's full error ledger, stored as a JSON column.
type RowErrorList []RowError

func (l RowErrorList) Value() (driver.Value, error) {
	if l == nil {
		l = RowErrorList{}
	}
	return json.Marshal(l)
}

func (l *RowErrorList) Scan(value interface{}) error {
	if value == nil {
		*l = RowErrorList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into RowErrorList", value)
	}
}

type ImportBatch struct {
	ID              uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"event_id"`
	Event           Event        `gorm:"foreignKey:EventID" json:"-"`
	FileName        string       `json:"file_name"`
	UploadedBy      uuid.UUID    `gorm:"type:uuid" json:"uploaded_by"`
	TotalRows       int          `gorm:"default:0" json:"total_rows"`
	SuccessCount    int          `gorm:"default:0" json:"success_count"`
	FailedCount     int          `gorm:"default:0" json:"failed_count"`
	TotalShirtsSold int          `gorm:"default:0" json:"total_shirts_sold"`
	Status          ImportStatus `gorm:"default:PROCESSING" json:"status"`
	ErrorLog        RowErrorList `gorm:"type:text" json:"error_log"`
	ContactEmail    string       `json:"contact_email"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`

	Registrations []Registration `gorm:"foreignKey:ImportBatchID" json:"registrations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *ImportBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TerminalStatus derives the batch outcome from its counters:
// COMPLETED when nothing failed, FAILED when nothing succeeded,
// PARTIAL otherwise.
func TerminalStatus(successCount, failedCount int) ImportStatus {
	switch {
	case failedCount == 0:
		return ImportStatusCompleted
	case successCount == 0:
		return ImportStatusFailed
	default:
		return ImportStatusPartial
	}
}
