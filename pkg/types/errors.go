package types

import "errors"

// Store operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Entity field validation errors.
var (
	ErrInvalidUrgency   = errors.New("invalid urgency value")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrInvalidCategory  = errors.New("invalid category value")
	ErrInvalidSource    = errors.New("invalid source value")
	ErrInvalidLinkType  = errors.New("invalid dashboard link type")
	ErrInvalidFrequency = errors.New("invalid frequency value")
	ErrInvalidName      = errors.New("invalid name")
)
