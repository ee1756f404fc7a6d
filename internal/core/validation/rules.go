package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Patterns for the recruitment domain. Years of experience must be
// representable as DD.DD; person numbers follow the YYYYMMDD-XXXX form.
var (
	yearsOfExperiencePattern = regexp.MustCompile(`^\d{1,2}(\.\d{1,2})?$`)
	personNumberPattern      = regexp.MustCompile(`^\d{8}-\d{4}$`)
	usernamePattern          = regexp.MustCompile(`^[A-Za-z0-9.,_-]{6,30}$`)
	emailPattern             = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	isoDatePattern           = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const passwordSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// IsInt reports whether value is a whole number within the optional
// [min, max] bounds. Bounds are applied in order: min, then max.
func IsInt(value float64, bounds ...int64) bool {
	if value != float64(int64(value)) {
		return false
	}
	n := int64(value)
	if len(bounds) >= 1 && n < bounds[0] {
		return false
	}
	if len(bounds) >= 2 && n > bounds[1] {
		return false
	}
	return true
}

// IsYearsOfExperience reports whether the string form of value is a
// non-negative number with at most two integer and two fractional digits.
func IsYearsOfExperience(value float64) bool {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	return yearsOfExperiencePattern.MatchString(s)
}

// IsYearsOfExperienceString is the raw-string variant used by the wizard,
// where input arrives as text. Non-numeric input is invalid.
func IsYearsOfExperienceString(value string) bool {
	if !yearsOfExperiencePattern.MatchString(value) {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// IsISO8601 reports whether date is a strict YYYY-MM-DD calendar date.
// The round-trip through time.Parse rejects drifting values like 2023-02-30,
// which Go normalizes to a different day.
func IsISO8601(date string) bool {
	if !isoDatePattern.MatchString(date) {
		return false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == date
}

// IsValidAvailabilityPeriod requires both endpoints to be valid dates and
// the start to strictly precede the end. Equal dates are invalid.
func IsValidAvailabilityPeriod(fromDate, toDate string) bool {
	if !IsISO8601(fromDate) || !IsISO8601(toDate) {
		return false
	}
	return fromDate < toDate
}

// IsValidCompetenceEntry requires a positive integer competence id and a
// well-formed years-of-experience value.
func IsValidCompetenceEntry(competenceID int64, yearsOfExperience float64) bool {
	return competenceID > 0 && IsYearsOfExperience(yearsOfExperience)
}

// IsValidUsername: 6 to 30 characters from [A-Za-z0-9.,_-].
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// IsValidPassword: at least 6 characters with one uppercase, one lowercase,
// one digit and one special character.
func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// IsValidPersonNumber: strict YYYYMMDD-XXXX digit pattern with a real
// calendar date in the first component.
func IsValidPersonNumber(personNumber string) bool {
	if !personNumberPattern.MatchString(personNumber) {
		return false
	}
	return IsISO8601(personNumber[0:4] + "-" + personNumber[4:6] + "-" + personNumber[6:8])
}

// IsValidEmail is a shape check only; deliverability is out of scope.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
