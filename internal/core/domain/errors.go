package domain

import "errors"

// Sentinel errors forming the service error taxonomy. Store adapters
// translate driver-specific failures into these at the boundary; the HTTP
// layer maps them to status codes in one place.
var (
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrCampaignNotFound   = errors.New("campaign not found")
)
