package domain

import "errors"

var (
	ErrInvalidMonth      = errors.New("invalid month provided")
	ErrInvalidPrice      = errors.New("price must be a non-negative decimal number")
	ErrInvalidDateOfSale = errors.New("dateOfSale must be a valid timestamp")
	ErrSeedUnavailable   = errors.New("seed source unavailable")
)
