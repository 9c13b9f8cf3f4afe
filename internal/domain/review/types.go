package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")

	ErrOwnListing          = errors.New("you cannot review your own listing")
	ErrReviewAlreadyExists = errors.New("you have already reviewed this listing")
	ErrNotAuthor           = errors.New("only the author can edit this review")
)
