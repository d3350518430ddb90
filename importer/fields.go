package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"raceday-backend/models"
)

var dateShape = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ParseDate parses a D/M/YYYY or DD/MM/YYYY cell into a calendar date.
// Blank cells (including the literal "null"/"undefined" that spreadsheet
// exports sometimes carry) return (nil, nil) so optional date columns
// degrade gracefully; callers that require the date must reject the nil.
//
// After extracting the numbers the date is rebuilt with time.Date and the
// components compared back: time.Date normalizes 31/02 into early March, and
// that roll-over is exactly what an impossible date looks like.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "undefined":
		return nil, nil
	}

	m := dateShape.FindStringSubmatch(s)
	if m == nil {
		return nil, errf(ErrInvalidDateFormat, "invalid date %q, expected DD/MM/YYYY", s)
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, errf(ErrInvalidDateFormat, "date %q is out of range", s)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return nil, errf(ErrInvalidDateFormat, "%q is not a valid calendar date", s)
	}

	return &t, nil
}

// ParseGender normalizes a gender cell. Accepted spellings are
// case-insensitive Vietnamese and English.
func ParseGender(s string) (models.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nam", "male":
		return models.GenderMale, nil
	case "nữ", "nu", "female":
		return models.GenderFemale, nil
	default:
		return "", errf(ErrInvalidGender, "unrecognized gender %q", s)
	}
}

var shirtCategorySynonyms = map[string]models.ShirtCategory{
	"nam":    models.ShirtCategoryMale,
	"male":   models.ShirtCategoryMale,
	"nữ":     models.ShirtCategoryFemale,
	"nu":     models.ShirtCategoryFemale,
	"female": models.ShirtCategoryFemale,
	"trẻ em": models.ShirtCategoryKid,
	"tre em": models.ShirtCategoryKid,
	"kid":    models.ShirtCategoryKid,
	"kids":   models.ShirtCategoryKid,
}

var shirtTypeSynonyms = map[string]models.ShirtType{
	"tay ngắn":     models.ShirtTypeShortSleeve,
	"tay ngan":     models.ShirtTypeShortSleeve,
	"áo tay ngắn":  models.ShirtTypeShortSleeve,
	"short sleeve": models.ShirtTypeShortSleeve,
	"short_sleeve": models.ShirtTypeShortSleeve,
	"ba lỗ":        models.ShirtTypeTankTop,
	"ba lo":        models.ShirtTypeTankTop,
	"áo ba lỗ":     models.ShirtTypeTankTop,
	"tank top":     models.ShirtTypeTankTop,
	"tank_top":     models.ShirtTypeTankTop,
	"tanktop":      models.ShirtTypeTankTop,
}

// ShirtSelection is a fully parsed shirt descriptor from one row.
type ShirtSelection struct {
	Category models.ShirtCategory
	Type     models.ShirtType
	Size     string
}

// ParseShirtSelection applies the all-or-nothing shirt descriptor rule:
// a row may order no shirt (all three cells blank) or exactly one shirt
// (all three cells present and recognized). Anything in between is an error.
func ParseShirtSelection(category, shirtType, size string) (*ShirtSelection, error) {
	category = strings.TrimSpace(category)
	shirtType = strings.TrimSpace(shirtType)
	size = strings.TrimSpace(size)

	if category == "" && shirtType == "" && size == "" {
		return nil, nil
	}
	if category == "" || shirtType == "" || size == "" {
		var missing []string
		if category == "" {
			missing = append(missing, ColShirtCategory)
		}
		if shirtType == "" {
			missing = append(missing, ColShirtType)
		}
		if size == "" {
			missing = append(missing, ColShirtSize)
		}
		return nil, errf(ErrPartialShirtDescriptor,
			"incomplete shirt selection, missing: %s", strings.Join(missing, ", "))
	}

	cat, ok := shirtCategorySynonyms[strings.ToLower(category)]
	if !ok {
		return nil, errf(ErrInvalidShirtDescriptor, "unrecognized shirt category %q", category)
	}
	typ, ok := shirtTypeSynonyms[strings.ToLower(shirtType)]
	if !ok {
		return nil, errf(ErrInvalidShirtDescriptor, "unrecognized shirt type %q", shirtType)
	}

	return &ShirtSelection{
		Category: cat,
		Type:     typ,
		Size:     strings.ToUpper(size),
	}, nil
}

// RowData is a fully typed, validated row ready for inventory resolution.
type RowData struct {
	FullName         string
	Email            string
	Phone            string
	DateOfBirth      time.Time
	Gender           models.Gender
	NationalID       string
	Address          string
	City             string
	EmergencyContact string
	EmergencyPhone   string
	BloodType        string
	BibNumber        string
	DistanceName     string
	Shirt            *ShirtSelection
}

// requiredColumns are checked together so one pass over the file surfaces
// every gap in a row, not just the first one.
var requiredColumns = []string{ColFullName, ColPhone, ColDateOfBirth, ColGender, ColDistance}

// ValidateRow turns raw cells into a RowData or a row-scoped error.
// Validation is pure: the same cells always classify the same way.
func ValidateRow(row Row) (*RowData, error) {
	var missing []string
	for _, col := range requiredColumns {
		if strings.TrimSpace(row.Cells[col]) == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errf(ErrMissingRequiredField,
			"missing required fields: %s", strings.Join(missing, ", "))
	}

	dob, err := ParseDate(row.Cells[ColDateOfBirth])
	if err != nil {
		return nil, err
	}
	if dob == nil {
		// "null"-looking cells survive the required check but are still
		// unusable for a mandatory date of birth.
		return nil, errf(ErrInvalidDateFormat, "invalid date of birth %q", row.Cells[ColDateOfBirth])
	}

	gender, err := ParseGender(row.Cells[ColGender])
	if err != nil {
		return nil, err
	}

	shirt, err := ParseShirtSelection(
		row.Cells[ColShirtCategory],
		row.Cells[ColShirtType],
		row.Cells[ColShirtSize],
	)
	if err != nil {
		return nil, err
	}

	return &RowData{
		FullName:         strings.TrimSpace(row.Cells[ColFullName]),
		Email:            strings.TrimSpace(row.Cells[ColEmail]),
		Phone:            strings.TrimSpace(row.Cells[ColPhone]),
		DateOfBirth:      *dob,
		Gender:           gender,
		NationalID:       strings.TrimSpace(row.Cells[ColNationalID]),
		Address:          strings.TrimSpace(row.Cells[ColAddress]),
		City:             strings.TrimSpace(row.Cells[ColCity]),
		EmergencyContact: strings.TrimSpace(row.Cells[ColEmergencyContact]),
		EmergencyPhone:   strings.TrimSpace(row.Cells[ColEmergencyPhone]),
		BloodType:        strings.TrimSpace(row.Cells[ColBloodType]),
		BibNumber:        strings.TrimSpace(row.Cells[ColBibNumber]),
		DistanceName:     strings.TrimSpace(row.Cells[ColDistance]),
		Shirt:            shirt,
	}, nil
}
