package auth

import (
	"errors"
	"strings"

	"stay-booking/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

// Credentials carry a login attempt. The password is only checked for presence;
// strength rules apply at registration.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if strings.TrimSpace(passwordStr) == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: passwordStr}, nil
}

func (c Credentials) Email() user.Email { return c.email }
func (c Credentials) Password() string  { return c.password }

type Registration struct {
	email    user.Email
	password user.Password
	name     user.Name
}

func NewRegistration(emailStr, passwordStr, firstName, lastName string) (Registration, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Registration{}, err
	}
	name, err := user.NewName(firstName, lastName)
	if err != nil {
		return Registration{}, err
	}
	return Registration{email: email, password: password, name: name}, nil
}

func (r Registration) Email() user.Email       { return r.email }
func (r Registration) Password() user.Password { return r.password }
func (r Registration) Name() user.Name         { return r.name }
