package listing

import (
	"errors"
	"strings"
)

// ValidationError names the required draft fields that were left empty.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "please fill out all fields: missing " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Validate checks that every text field except the image is non-empty.
func (d Draft) Validate() error {
	var missing []string
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	check("name", d.Name)
	check("description", d.Description)
	check("quantity", d.Quantity)
	check("pickup_time", d.PickupTime)

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	if d.Image != "" {
		if err := ValidateImageRef(d.Image); err != nil {
			return err
		}
	}
	return nil
}
