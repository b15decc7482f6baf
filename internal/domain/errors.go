package domain

import "errors"

// ErrValidation is the root of every field-level failure; callers wrap it
// with a human-readable message and handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// Vehicle errors
var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrPlateExists       = errors.New("vehicle with this plate already exists")
	ErrForbidden         = errors.New("caller lacks permission for this vehicle")
	ErrRecipientNotFound = errors.New("share recipient not found")
	ErrSelfShare         = errors.New("cannot share a vehicle with its owner")
)

// Maintenance errors
var (
	ErrMaintenanceNotFound = errors.New("maintenance record not found")
)
