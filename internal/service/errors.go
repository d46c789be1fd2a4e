package service

import "errors"

var ErrNotFound = errors.New("not found")

var (
	ErrValidation = errors.New("validation")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrInFlight   = errors.New("order already in flight")
	ErrSubmission = errors.New("could not place order, please retry or contact support")
)
