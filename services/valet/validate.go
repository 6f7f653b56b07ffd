package valet

import (
	"strconv"
	"strings"

	"valetpro/models"
)

const (
	msgFieldsRequired = "All fields are required."
	msgInvalidEta     = "Please enter a valid ETA in minutes."
)

// ValidateVehicle trims every field and requires all four to be non-empty.
func ValidateVehicle(in models.RegistrationInput) (models.VehicleRecord, error) {
	v := models.VehicleRecord{
		Make:         strings.TrimSpace(in.Make),
		Model:        strings.TrimSpace(in.Model),
		LicensePlate: strings.TrimSpace(in.LicensePlate),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
	}
	fields := []struct{ name, value string }{
		{"make", v.Make},
		{"model", v.Model},
		{"licensePlate", v.LicensePlate},
		{"mobileNumber", v.MobileNumber},
	}
	for _, f := range fields {
		if f.value == "" {
			return models.VehicleRecord{}, NewValidationError(f.name, msgFieldsRequired)
		}
	}
	return v, nil
}

// ParseEta accepts a base-10 integer of at least one minute and returns it
// trimmed.
func ParseEta(raw string) (string, error) {
	eta := strings.TrimSpace(raw)
	n, err := strconv.Atoi(eta)
	if err != nil || n <= 0 {
		return "", NewValidationError("eta", msgInvalidEta)
	}
	return eta, nil
}
