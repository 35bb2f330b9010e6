package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var CountryCode = "IN"

func IsValidEmail(email string) bool {
	// Basic email validation regex pattern
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	regex := regexp.MustCompile(pattern)
	return regex.MatchString(email)
}

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return err // Phone number is invalid
	}

	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number is not valid")
	}

	return nil // Phone number is valid for the specified country code
}

var unsafeFilenameChars = regexp.MustCompile(`[^\w\s.-]`)

// SanitizeFilename strips special characters, replaces spaces with
// underscores and appends a timestamp so stored names never collide.
func SanitizeFilename(filename string) string {
	filename = unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "")
	filename = strings.ReplaceAll(filename, " ", "_")

	timestamp := time.Now().Format("20060102_150405")
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	if name == "" {
		name = "file"
	}
	if ext != "" {
		return fmt.Sprintf("%s_%s%s", name, timestamp, ext)
	}
	return fmt.Sprintf("%s_%s", name, timestamp)
}

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}
