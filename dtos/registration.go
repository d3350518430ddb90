package dtos

// RegistrationRequest is the online single-registration payload. Shirt
// fields follow the same all-or-nothing rule as the bulk import: either all
// three are given or none.
type RegistrationRequest struct {
	DistanceID       string `json:"distance_id" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone" binding:"required"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"` // DD/MM/YYYY
	Gender           string `json:"gender" binding:"required"`
	NationalID       string `json:"national_id"`
	Address          string `json:"address"`
	City             string `json:"city"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	BloodType        string `json:"blood_type"`
	ShirtCategory    string `json:"shirt_category"`
	ShirtType        string `json:"shirt_type"`
	ShirtSize        string `json:"shirt_size"`
}
