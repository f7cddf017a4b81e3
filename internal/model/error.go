package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")  // 400
	ErrInvalidArgument   = errors.New("invalid argument")  // 400
	ErrUnauthorized      = errors.New("unauthorized")      // 401
	ErrForbidden         = errors.New("forbidden")         // 403
	ErrPartNotFound      = errors.New("part not found")    // 404
	ErrServiceNotFound   = errors.New("service not found") // 404
	ErrInsufficientStock = errors.New("insufficient stock in inventory")
)
