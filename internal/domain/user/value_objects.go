package user

import (
	"errors"
	"regexp"
	"strings"
)

const MaxNameLength = 50

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrEmptyName       = errors.New("first and last name are required")
	ErrNameTooLong     = errors.New("name must be 50 characters or fewer")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return Name{}, ErrEmptyName
	}
	if len([]rune(first)) > MaxNameLength || len([]rune(last)) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{first: first, last: last}, nil
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }
