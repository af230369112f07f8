package order

import (
	"regexp"
	"strings"
	"time"
)

// Form field names recognized by the validation rule table. Any other
// field name always validates (no rule).
const (
	FieldFullName     = "fullname"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldDeliveryDate = "delivery_date"
)

// DeliveryDateLayout is the wire format for delivery dates
const DeliveryDateLayout = "2006-01-02"

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]{3,}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// FieldValue is one named form field with its raw input
type FieldValue struct {
	Name  string
	Value string
}

// FieldResult is the validation state of a single field. A field holds
// at most one message; re-validating replaces any prior message.
type FieldResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateField applies the rule for the named field against today's
// calendar day
func ValidateField(name, value string) FieldResult {
	return ValidateFieldAt(name, value, time.Now())
}

// ValidateFieldAt applies the rule for the named field, using now to
// resolve the current calendar day for delivery-date checks. It is
// idempotent: the same input always yields the same result.
func ValidateFieldAt(name, value string, now time.Time) FieldResult {
	switch name {
	case FieldFullName:
		if strings.TrimSpace(value) == "" {
			return invalid(name, "Name is required")
		}
		if !namePattern.MatchString(value) {
			return invalid(name, "Enter a valid name (min 3 letters)")
		}
	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return invalid(name, "Email is required")
		}
		if !emailPattern.MatchString(value) {
			return invalid(name, "Enter a valid email address")
		}
	case FieldPhone:
		if strings.TrimSpace(value) == "" {
			return invalid(name, "Phone number is required")
		}
		if !phonePattern.MatchString(value) {
			return invalid(name, "Enter a valid phone number (10-15 digits)")
		}
	case FieldDeliveryDate:
		if value == "" {
			return invalid(name, "Delivery date is required")
		}
		selected, err := time.ParseInLocation(DeliveryDateLayout, value, now.Location())
		if err != nil {
			return invalid(name, "Enter a valid delivery date")
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if selected.Before(today) {
			return invalid(name, "Delivery date cannot be in the past")
		}
	}
	return FieldResult{Field: name, Valid: true}
}

// ValidateForm validates every field and reports overall validity.
// It never short-circuits: each field's error state is refreshed even
// when an earlier field has already failed.
func ValidateForm(fields []FieldValue) ([]FieldResult, bool) {
	return ValidateFormAt(fields, time.Now())
}

// ValidateFormAt is ValidateForm against an explicit current time
func ValidateFormAt(fields []FieldValue, now time.Time) ([]FieldResult, bool) {
	results := make([]FieldResult, 0, len(fields))
	valid := true
	for _, f := range fields {
		r := ValidateFieldAt(f.Name, f.Value, now)
		if !r.Valid {
			valid = false
		}
		results = append(results, r)
	}
	return results, valid
}

func invalid(field, message string) FieldResult {
	return FieldResult{Field: field, Valid: false, Message: message}
}
