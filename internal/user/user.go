package user

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateEmail is returned when registering an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned when no account matches the
	// email/password pair. Callers get the same error for an unknown
	// email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput is returned when a required registration field is
	// blank or a body metric is not positive.
	ErrInvalidInput = errors.New("invalid registration input")
)

// User is a registered account. The password is stored only as a
// bcrypt hash.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Height        int     // cm
	Weight        float64 // kg
	Age           int
	ActivityLevel string
	Goals         string
	CreatedAt     time.Time
}

// Registration carries the fields of the sign-up form. Age, activity
// level and goals are optional.
type Registration struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	Height        int
	Weight        float64
	Age           int
	ActivityLevel string
	Goals         string
}

// Validate checks the required fields and body metrics.
func (r Registration) Validate() error {
	switch {
	case r.FirstName == "", r.LastName == "", r.Email == "", r.Password == "":
		return ErrInvalidInput
	case r.Height <= 0, r.Weight <= 0:
		return ErrInvalidInput
	}
	return nil
}
