package validator

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	loginRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)
	plateRegex = regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidPhone checks if the phone number format is valid
func IsValidPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return false
	}
	return phoneRegex.MatchString(phone)
}

// IsValidLogin checks if the login format is valid
func IsValidLogin(login string) bool {
	if strings.TrimSpace(login) == "" {
		return false
	}
	return loginRegex.MatchString(login)
}

// IsValidLicensePlate checks the ABC-1234 plate format
func IsValidLicensePlate(plate string) bool {
	return plateRegex.MatchString(plate)
}

// IsValidBirthday checks a YYYY-MM-DD date that is not in the future
func IsValidBirthday(date string) bool {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return !parsed.After(time.Now())
}

// IsValidCarYear bounds the model year to something plausible
func IsValidCarYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}
