package apperrors

import "errors"

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoCategories     = errors.New("no categories found")
	ErrInvalidInput     = errors.New("invalid input")
)
