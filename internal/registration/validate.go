package registration

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Messages shown to the user, verbatim.
const (
	MsgName           = "Name is mandatory and must contain only alphabets."
	MsgEmail          = "Email is mandatory and must be valid for an academic email from Israel (*.ac.il)."
	MsgPassword       = "Password must contain at least one uppercase letter, at least one lowercase letter, one digit, and must be at least 8 characters long."
	MsgPasswordMatch  = "Passwords do not match"
	MsgDateOfBirth    = "User must be at least 18 years old."
	MsgGenderRequired = "Please select a gender"
)

const (
	MinimumAge        = 18
	MinPasswordLength = 8

	// DateOfBirthLayout is the YYYY-MM-DD form a date input produces.
	DateOfBirthLayout = "2006-01-02"
)

// Custom validator tags.
const (
	tagLowerAlpha      = "lower_alpha"
	tagAcademicILEmail = "academic_il_email"
	tagPasswordStrong  = "password_strength"
)

var genderTag = fmt.Sprintf("oneof=%d %d", GenderMale, GenderFemale)

var (
	lowerAlphaRegex = regexp.MustCompile(`^[a-z]+$`)
	// local part of alphanumerics and ._- then one or more domain labels before ac.il
	academicILEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@([a-zA-Z0-9-]+\.)+ac\.il$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation(tagLowerAlpha, func(fl validator.FieldLevel) bool {
		return lowerAlphaRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation(tagAcademicILEmail, func(fl validator.FieldLevel) bool {
		return academicILEmailRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation(tagPasswordStrong, validatePasswordStrength)
}

// validatePasswordStrength requires the minimum length plus at least one
// ASCII uppercase letter, one lowercase letter and one ASCII digit.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	hasUpper := false
	hasLower := false
	hasDigit := false

	for _, char := range password {
		switch {
		case 'A' <= char && char <= 'Z':
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case '0' <= char && char <= '9':
			hasDigit = true
		}

		if hasUpper && hasLower && hasDigit {
			return true
		}
	}

	return false
}

// ValidateName checks a first or last name. Returns "" when valid.
func ValidateName(name string) string {
	if validate.Var(strings.TrimSpace(name), tagLowerAlpha) != nil {
		return MsgName
	}
	return ""
}

// ValidateEmail checks for an academic Israeli address (*.ac.il).
func ValidateEmail(email string) string {
	if validate.Var(strings.TrimSpace(email), tagAcademicILEmail) != nil {
		return MsgEmail
	}
	return ""
}

// ValidatePassword checks password strength.
func ValidatePassword(password string) string {
	if validate.Var(strings.TrimSpace(password), tagPasswordStrong) != nil {
		return MsgPassword
	}
	return ""
}

// ValidateConfirmPassword checks that confirm equals password exactly, after trimming both.
func ValidateConfirmPassword(password, confirm string) string {
	if validate.VarWithValue(strings.TrimSpace(confirm), strings.TrimSpace(password), "eqfield") != nil {
		return MsgPasswordMatch
	}
	return ""
}

// ValidateDateOfBirth checks that the user is at least MinimumAge years old.
//
// Age is the calendar year of now minus the birth year. Month and day are
// ignored, so someone turning 18 later this year already passes.
func ValidateDateOfBirth(dob string, now time.Time) string {
	birth, err := time.Parse(DateOfBirthLayout, strings.TrimSpace(dob))
	if err != nil {
		return MsgDateOfBirth
	}
	if now.Year()-birth.Year() < MinimumAge {
		return MsgDateOfBirth
	}
	return ""
}

// ValidateGender requires one of the offered options other than the placeholder.
func ValidateGender(g Gender) string {
	if validate.Var(int(g), genderTag) != nil {
		return MsgGenderRequired
	}
	return ""
}

// Validate runs the rule for kind against a raw input.
// Gender inputs are option values as accepted by ParseGender.
func Validate(kind FieldKind, input string, now time.Time) string {
	switch kind {
	case KindName:
		return ValidateName(input)
	case KindEmail:
		return ValidateEmail(input)
	case KindPassword:
		return ValidatePassword(input)
	case KindDateOfBirth:
		return ValidateDateOfBirth(input, now)
	case KindGender:
		return ValidateGender(ParseGender(input))
	default:
		return ""
	}
}
