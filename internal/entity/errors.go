package entity

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrBookExists     = errors.New("book with this title and author already exists")
	ErrInvalidInput   = errors.New("invalid input")
)
