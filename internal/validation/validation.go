// Package validation holds the field-level checks applied to raw form
// input before anything reaches a service or the database. Each function
// returns either the normalized value or a single *FieldError; callers
// stop at the first failure rather than accumulating every violation.
package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
)

// TimeFormat is the canonical appointment date-time format, matching the
// HTML datetime-local input ("2026-08-31T14:30").
const TimeFormat = "2006-01-02T15:04"

// FieldError reports the first rule a single field violated.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func fail(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// PatientName trims the input and enforces a 2-100 character length.
func PatientName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fail("name", "name is required")
	}
	if utf8.RuneCountInString(name) < 2 {
		return "", fail("name", "name must be at least 2 characters")
	}
	if utf8.RuneCountInString(name) > 100 {
		return "", fail("name", "name is too long (max 100 characters)")
	}
	return name, nil
}

// Gender accepts exactly Male, Female, or Other.
func Gender(raw string) (patient.Gender, error) {
	g := patient.Gender(strings.TrimSpace(raw))
	if !g.IsValid() {
		return "", fail("gender", "gender must be one of Male, Female, Other")
	}
	return g, nil
}

// Age parses the input as an integer in [0, 150].
func Age(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fail("age", "age is required")
	}
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, fail("age", "age must be a valid number")
	}
	if age < 0 || age > 150 {
		return 0, fail("age", "age must be between 0 and 150")
	}
	return age, nil
}

// Phone validates that the input contains 10-15 digits once common
// separators are stripped. The returned value is the trimmed raw input,
// not the digit-only form: validation and storage intentionally diverge.
func Phone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return "", fail("phone", "phone number is required")
	}
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 10 || digits > 15 {
		return "", fail("phone", "phone number must be 10-15 digits")
	}
	return phone, nil
}

// DoctorName trims the input and enforces a 1-100 character length.
func DoctorName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fail("doctor_name", "doctor name is required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return "", fail("doctor_name", "doctor name is too long (max 100 characters)")
	}
	return name, nil
}

// AppointmentTime parses the input in TimeFormat and rejects values
// strictly before now. The caller supplies now so the check is
// deterministic under test.
func AppointmentTime(raw string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fail("scheduled_at", "appointment date and time is required")
	}
	t, err := time.ParseInLocation(TimeFormat, s, now.Location())
	if err != nil {
		return time.Time{}, fail("scheduled_at", "invalid date/time format")
	}
	if t.Before(now) {
		return time.Time{}, fail("scheduled_at", "appointment cannot be scheduled in the past")
	}
	return t, nil
}

// OptionalText trims the input and enforces a maximum length. Blank input
// normalizes to nil so "absent" is stored rather than an empty string.
func OptionalText(field, raw string, maxLen int) (*string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(s) > maxLen {
		return nil, fail(field, field+" is too long (max "+strconv.Itoa(maxLen)+" characters)")
	}
	return &s, nil
}
