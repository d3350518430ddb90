package dtos

import (
	"raceday-backend/models"

	"github.com/google/uuid"
)

// ImportBatchSummary is the aggregate outcome returned to the uploader.
type ImportBatchSummary struct {
	ID           uuid.UUID           `json:"id"`
	TotalRows    int                 `json:"totalRows"`
	SuccessCount int                 `json:"successCount"`
	FailedCount  int                 `json:"failedCount"`
	Status       models.ImportStatus `json:"status"`
	ContactEmail string              `json:"contactEmail"`
	TotalShirts  int                 `json:"totalShirts"`
}

// ImportResponse is the synchronous import payload: the summary plus a
// bounded sample of row errors. The full ledger remains queryable against
// the batch id.
type ImportResponse struct {
	Success bool               `json:"success"`
	Batch   ImportBatchSummary `json:"batch"`
	Errors  []models.RowError  `json:"errors"`
}

func NewImportResponse(batch *models.ImportBatch, errorSample []models.RowError) ImportResponse {
	if errorSample == nil {
		errorSample = []models.RowError{}
	}
	return ImportResponse{
		Success: batch.Status != models.ImportStatusFailed,
		Batch: ImportBatchSummary{
			ID:           batch.ID,
			TotalRows:    batch.TotalRows,
			SuccessCount: batch.SuccessCount,
			FailedCount:  batch.FailedCount,
			Status:       batch.Status,
			ContactEmail: batch.ContactEmail,
			TotalShirts:  batch.TotalShirtsSold,
		},
		Errors: errorSample,
	}
}
