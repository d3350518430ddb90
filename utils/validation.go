package utils

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllowedSpreadsheetContentTypes is the set of allowed content types for
// registration file uploads.
var AllowedSpreadsheetContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel": true,
	"application/octet-stream": true, // some browsers send this for .xlsx
}

// MaxUploadSize is the maximum allowed file size for uploads (10MB).
const MaxUploadSize = 10 << 20

// ValidateSpreadsheetUpload checks that the uploaded file looks like an
// Excel workbook and does not exceed the maximum file size. The actual
// parse is the authoritative format check.
func ValidateSpreadsheetUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadSize {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of 10MB", fh.Size)
	}

	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".xlsx") {
		return fmt.Errorf("invalid file %q; only .xlsx files are accepted", fh.Filename)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType != "" && !AllowedSpreadsheetContentTypes[contentType] {
		return fmt.Errorf("invalid file type '%s'; expected an Excel spreadsheet", contentType)
	}

	return nil
}

// SanitizeValidationError takes a validator error and returns a user-friendly
// message without leaking internal Go struct names.
func SanitizeValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errMsg := err.Error()
		if strings.Contains(errMsg, "cannot unmarshal") || strings.Contains(errMsg, "invalid character") {
			return "Invalid request body"
		}
		return "Invalid request body"
	}

	var messages []string
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	if len(messages) == 0 {
		return "Invalid request body"
	}

	return strings.Join(messages, "; ")
}
