package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

// Rating is a whole number of stars.
type Rating int

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return 0, ErrInvalidRating
	}
	return Rating(v), nil
}

func (r Rating) Value() int { return int(r) }

type Comment string

func NewComment(s string) (Comment, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return "", ErrEmptyComment
	case utf8.RuneCountInString(s) > MaxCommentLength:
		return "", ErrCommentTooLong
	}
	return Comment(s), nil
}

func (c Comment) String() string { return string(c) }
