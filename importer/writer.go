package importer

import (
	"context"

	"raceday-backend/models"

	"gorm.io/gorm"
)

// persistRow commits one row as a single transaction: resolve the catalog
// entries, increment the counters, insert the registration. Either all three
// effects commit or none do.
//
// The counter increments are optimistic updates whose WHERE clauses re-check
// the cap and the stock at write time. Rows from a concurrent batch (or a
// live online registration) may consume the last unit between our read and
// our write; the affected-row count is what decides who got it.
func (imp *Importer) persistRow(ctx context.Context, batch *models.ImportBatch, data *RowData) (*models.Registration, error) {
	var reg models.Registration

	err := imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		distance, err := resolveDistance(tx, batch.EventID, data.DistanceName)
		if err != nil {
			return err
		}

		var shirt *models.EventShirt
		if data.Shirt != nil {
			shirt, err = resolveShirt(tx, batch.EventID, data.Shirt)
			if err != nil {
				return err
			}
		}

		res := tx.Model(&models.Distance{}).
			Where("id = ? AND (max_participants IS NULL OR current_participants < max_participants)", distance.ID).
			UpdateColumn("current_participants", gorm.Expr("current_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errf(ErrDistanceFull, "distance %q is full", distance.Name)
		}

		if shirt != nil {
			res := tx.Model(&models.EventShirt{}).
				Where("id = ? AND sold_quantity < stock_quantity", shirt.ID).
				UpdateColumn("sold_quantity", gorm.Expr("sold_quantity + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errf(ErrOutOfStock, "shirt %s is out of stock", shirt.Label())
			}
		}

		raceFee, shirtFee, total := ComputeFees(distance, shirt)

		reg = models.Registration{
			EventID:          batch.EventID,
			DistanceID:       distance.ID,
			FullName:         data.FullName,
			Email:            data.Email,
			Phone:            data.Phone,
			DateOfBirth:      data.DateOfBirth,
			Gender:           data.Gender,
			NationalID:       data.NationalID,
			Address:          data.Address,
			City:             data.City,
			EmergencyContact: data.EmergencyContact,
			EmergencyPhone:   data.EmergencyPhone,
			BloodType:        data.BloodType,
			BibNumber:        data.BibNumber,
			RaceFee:          raceFee,
			ShirtFee:         shirtFee,
			TotalAmount:      total,
			PaymentStatus:    models.PaymentStatusPending,
			Source:           models.RegistrationSourceExcel,
			ImportBatchID:    &batch.ID,
		}
		if shirt != nil {
			reg.ShirtID = &shirt.ID
			reg.ShirtCategory = shirt.Category
			reg.ShirtType = shirt.Type
			reg.ShirtSize = shirt.Size
		}

		return tx.Create(&reg).Error
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
