// Package validation enforces the intake form constraints. The same rules
// run per field while the form is being filled and across the whole form at
// submission time; an order that fails here never reaches the database.
package validation

import (
	"regexp"
	"strings"

	apperrors "mousespa/internal/errors"
)

const (
	MsgRequired       = "Field ini wajib diisi"
	MsgInvalidEmail   = "Format email tidak valid"
	MsgInvalidPhone   = "Nomor telepon tidak valid (10-15 digit)"
	MsgNoServices     = "Pilih minimal satu layanan"
	MsgNoPickupMethod = "Pilih metode pengambilan"
	MsgFormIncomplete = "Mohon lengkapi semua field yang wajib diisi"

	minPhoneDigits = 10
	maxPhoneDigits = 15
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// OrderForm carries the raw intake form fields for full-form validation.
type OrderForm struct {
	CustomerName  string
	PhoneNumber   string
	Email         string
	Services      []string
	PadQuantity   int
	PickupMethod  string
	PickupAddress string
}

// ValidEmail reports whether a non-empty value looks like local@domain.tld.
// An empty value passes: email is an optional field.
func ValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// ValidPhone strips every non-digit character and accepts 10 to 15
// remaining digits, so "0812-3456-789" counts as 11 digits.
func ValidPhone(phone string) bool {
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) >= minPhoneDigits && len(digits) <= maxPhoneDigits
}

// Required reports whether a value is non-empty after trimming.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidateOrderForm runs every intake rule and returns a ValidationError
// listing each failing field, or nil when the form may be submitted. The
// pickup address is required only when the pickup method is "pickup".
func ValidateOrderForm(form OrderForm) error {
	var details []apperrors.ValidationDetail

	if !Required(form.CustomerName) {
		details = append(details, apperrors.ValidationDetail{Field: "customer_name", Message: MsgRequired})
	}

	if !Required(form.PhoneNumber) {
		details = append(details, apperrors.ValidationDetail{Field: "phone_number", Message: MsgRequired})
	} else if !ValidPhone(form.PhoneNumber) {
		details = append(details, apperrors.ValidationDetail{Field: "phone_number", Message: MsgInvalidPhone})
	}

	if !ValidEmail(form.Email) {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: MsgInvalidEmail})
	}

	if len(form.Services) == 0 {
		details = append(details, apperrors.ValidationDetail{Field: "services", Message: MsgNoServices})
	}

	switch form.PickupMethod {
	case "":
		details = append(details, apperrors.ValidationDetail{Field: "pickup_method", Message: MsgNoPickupMethod})
	case "pickup":
		if !Required(form.PickupAddress) {
			details = append(details, apperrors.ValidationDetail{Field: "pickup_address", Message: MsgRequired})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError(MsgFormIncomplete, details...)
	}

	return nil
}
