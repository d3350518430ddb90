package importer

import (
	"errors"
	"strings"

	"raceday-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveDistance matches a row's free-text distance name against the
// event's distances. Case-insensitive trimmed exact match only; fuzzy
// matching would risk silently registering someone for the wrong race.
func resolveDistance(tx *gorm.DB, eventID uuid.UUID, name string) (*models.Distance, error) {
	var distance models.Distance
	err := tx.Where("event_id = ? AND LOWER(name) = LOWER(?)", eventID, strings.TrimSpace(name)).
		First(&distance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(ErrDistanceNotFound, "distance %q not found for this event", name)
		}
		return nil, err
	}
	return &distance, nil
}

// resolveShirt matches a parsed shirt descriptor against the event's
// available variants and checks remaining stock. The stock read here is
// advisory; the authoritative check is the optimistic UPDATE at write time.
func resolveShirt(tx *gorm.DB, eventID uuid.UUID, sel *ShirtSelection) (*models.EventShirt, error) {
	var shirt models.EventShirt
	err := tx.Where(
		"event_id = ? AND category = ? AND type = ? AND size = ? AND is_available = ?",
		eventID, sel.Category, sel.Type, sel.Size, true,
	).First(&shirt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(ErrShirtNotFound, "shirt %s / %s / %s is not offered for this event",
				sel.Category, sel.Type, sel.Size)
		}
		return nil, err
	}

	if shirt.Remaining() <= 0 {
		return nil, errf(ErrOutOfStock, "shirt %s is out of stock", shirt.Label())
	}
	return &shirt, nil
}

// ComputeFees derives the row's money breakdown: race fee from the distance,
// shirt fee from the resolved variant (zero without a shirt), total as the
// plain sum. No taxes, discounts or rounding.
func ComputeFees(distance *models.Distance, shirt *models.EventShirt) (raceFee, shirtFee, total float64) {
	raceFee = distance.Price
	if shirt != nil {
		shirtFee = shirt.Price
	}
	return raceFee, shirtFee, raceFee + shirtFee
}
