package usecase

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnvalidatable = errors.New("table cannot be guessed")
	ErrNoMatchData   = errors.New("no match data found")
)
