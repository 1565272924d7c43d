package registration

import (
	"strings"
	"time"
)

// Draft holds the raw, untrusted field values of the active step.
// Values are trimmed by the wizard, not by the caller.
type Draft struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	DateOfBirth     string
	Gender          Gender
	Comments        string
}

// Record is an accepted registration. Every field passed its validator
// when the record was created and records are never mutated afterwards.
//
// Password is kept in plaintext and shown in the records table.
type Record struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	DateOfBirth string
	Gender      Gender
	Comments    string
}

// trimmed returns a copy of the draft with every text field trimmed.
func (d Draft) trimmed() Draft {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Password = strings.TrimSpace(d.Password)
	d.ConfirmPassword = strings.TrimSpace(d.ConfirmPassword)
	d.DateOfBirth = strings.TrimSpace(d.DateOfBirth)
	d.Comments = strings.TrimSpace(d.Comments)
	return d
}

func (d Draft) toRecord() Record {
	d = d.trimmed()
	return Record{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Password:    d.Password,
		DateOfBirth: d.DateOfBirth,
		Gender:      d.Gender,
		Comments:    d.Comments,
	}
}

// Clock provides the current time for the date of birth check.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }
