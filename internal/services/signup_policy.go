package services

import (
	"net/mail"
	"strings"
	"time"

	"github.com/sosw-app/sosw/internal/models"
)

const dateOfBirthLayout = "20060102"

const (
	maxFullNameLength = 128
	maxFcmTokenLength = 256
	minPasswordLength = 8
)

type SignUpInput struct {
	Email       string
	FullName    string
	Gender      string
	DateOfBirth string
	FcmToken    string
	Password    string
}

type SignUpData struct {
	Email       string
	FullName    string
	Gender      string
	DateOfBirth time.Time
	FcmToken    string
	Password    string
}

// ValidateSignUp normalizes the raw signup input and returns either the
// normalized values or a field-to-message error map.
func ValidateSignUp(input SignUpInput, now time.Time, location *time.Location) (SignUpData, map[string]string) {
	fieldErrors := map[string]string{}
	data := SignUpData{}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		fieldErrors["email"] = "This field is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		fieldErrors["email"] = "Enter a valid email address"
	} else {
		data.Email = email
	}

	fullName := strings.TrimSpace(input.FullName)
	switch {
	case fullName == "":
		fieldErrors["full_name"] = "This field is required"
	case len(fullName) > maxFullNameLength:
		fieldErrors["full_name"] = "Full name must be at most 128 characters"
	default:
		data.FullName = fullName
	}

	gender := strings.ToUpper(strings.TrimSpace(input.Gender))
	if gender != models.GenderFemale && gender != models.GenderMale {
		fieldErrors["gender"] = `Gender can be "F" or "M" only`
	} else {
		data.Gender = gender
	}

	rawDate := strings.TrimSpace(input.DateOfBirth)
	if rawDate == "" {
		fieldErrors["date_of_birth"] = "This field is required"
	} else if parsed, err := time.ParseInLocation(dateOfBirthLayout, rawDate, location); err != nil {
		fieldErrors["date_of_birth"] = "Date must use the YYYYMMDD format"
	} else if parsed.After(dateAtLocation(now, location)) {
		fieldErrors["date_of_birth"] = "Date of birth cannot be in future!"
	} else {
		data.DateOfBirth = parsed
	}

	password := strings.TrimSpace(input.Password)
	if len(password) < minPasswordLength {
		fieldErrors["password"] = "Password must be at least 8 characters"
	} else {
		data.Password = password
	}

	fcmToken := strings.TrimSpace(input.FcmToken)
	if len(fcmToken) > maxFcmTokenLength {
		fieldErrors["fcm_token"] = "FCM token must be at most 256 characters"
	} else {
		data.FcmToken = fcmToken
	}

	if len(fieldErrors) > 0 {
		return SignUpData{}, fieldErrors
	}
	return data, nil
}

func ValidateFcmToken(raw string) (string, map[string]string) {
	fcmToken := strings.TrimSpace(raw)
	if fcmToken == "" {
		return "", map[string]string{"fcm_token": "This field is required"}
	}
	if len(fcmToken) > maxFcmTokenLength {
		return "", map[string]string{"fcm_token": "FCM token must be at most 256 characters"}
	}
	return fcmToken, nil
}

func dateAtLocation(now time.Time, location *time.Location) time.Time {
	current := now.In(location)
	return time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, location)
}
