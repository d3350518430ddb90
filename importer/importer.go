package importer

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"raceday-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrorSampleSize is how many row errors the synchronous import response
// carries. The full ledger stays on the ImportBatch record.
const ErrorSampleSize = 10

// Importer runs bulk registration imports for an event. Rows are processed
// strictly in file order, one transaction per row, so rows later in the same
// file correctly contend for stock consumed by earlier ones.
type Importer struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// accumulator is the batch outcome folded over row results. It is passed and
// returned by value so the row loop never shares mutable state.
type accumulator struct {
	success int
	failed  int
	shirts  int
	errors  models.RowErrorList
}

func (a accumulator) fail(row Row, err error) accumulator {
	a.failed++
	a.errors = append(a.errors, models.RowError{
		Row:   row.Number,
		Data:  row.Cells,
		Error: err.Error(),
	})
	return a
}

func (a accumulator) succeed(shirtSold bool) accumulator {
	a.success++
	if shirtSold {
		a.shirts++
	}
	return a
}

// Run parses the uploaded workbook and processes every row. A row failure is
// recorded and processing continues; only an unparseable file (or a failure
// to create the batch record) aborts the upload. The returned batch is
// terminal: status, counters, error ledger and completion time are set.
func (imp *Importer) Run(ctx context.Context, event *models.Event, uploadedBy uuid.UUID, fileName string, file io.Reader) (*models.ImportBatch, error) {
	rows, err := ParseWorkbook(file)
	if err != nil {
		return nil, err
	}

	batch := &models.ImportBatch{
		EventID:    event.ID,
		FileName:   fileName,
		UploadedBy: uploadedBy,
		TotalRows:  len(rows),
		Status:     models.ImportStatusProcessing,
		ErrorLog:   models.RowErrorList{},
	}
	if len(rows) > 0 {
		batch.ContactEmail = strings.TrimSpace(rows[0].Cells[ColEmail])
	}
	// Batch bookkeeping is deliberately not bound to ctx: a cancellation
	// mid-batch must still leave an inspectable record behind.
	if err := imp.db.Create(batch).Error; err != nil {
		return nil, err
	}

	acc := accumulator{}
	for i, row := range rows {
		// Cancellation is honored between rows only: a committed row is an
		// independent unit of work and stays committed.
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Printf("Import batch %s cancelled after %d of %d rows: %v",
				batch.ID, i, len(rows), ctxErr)
			for _, rest := range rows[i:] {
				acc = acc.fail(rest, errf(ErrCancelled, "import cancelled before this row was processed"))
			}
			break
		}
		acc = imp.processRow(ctx, batch, row, acc)
	}

	now := time.Now()
	batch.SuccessCount = acc.success
	batch.FailedCount = acc.failed
	batch.TotalShirtsSold = acc.shirts
	batch.ErrorLog = acc.errors
	batch.Status = models.TerminalStatus(acc.success, acc.failed)
	batch.CompletedAt = &now

	if err := imp.db.Save(batch).Error; err != nil {
		return nil, err
	}

	log.Printf("Import batch %s finished: %d/%d rows ok, %d failed, status %s",
		batch.ID, acc.success, batch.TotalRows, acc.failed, batch.Status)
	return batch, nil
}

func (imp *Importer) processRow(ctx context.Context, batch *models.ImportBatch, row Row, acc accumulator) accumulator {
	data, err := ValidateRow(row)
	if err != nil {
		return acc.fail(row, err)
	}

	reg, err := imp.persistRow(ctx, batch, data)
	if err != nil {
		if KindOf(err) == "" {
			// Infrastructure failure, not a business rejection. Still
			// row-scoped: the transaction rolled back and siblings proceed.
			log.Printf("Import batch %s row %d: unexpected error: %v", batch.ID, row.Number, err)
		}
		return acc.fail(row, err)
	}

	return acc.succeed(reg.ShirtID != nil)
}

// ErrorSample returns the first n entries of the batch's error ledger for
// the synchronous response.
func ErrorSample(batch *models.ImportBatch, n int) []models.RowError {
	if len(batch.ErrorLog) <= n {
		return batch.ErrorLog
	}
	return batch.ErrorLog[:n]
}
