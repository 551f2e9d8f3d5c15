package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("invalid parameters")
	ErrUnauthorized          = errors.New("Unauthorized")
	ErrUserNotFound          = errors.New("User not found")
	ErrUserExist             = errors.New("Email already exists")
	ErrInvalidCredentials    = errors.New("Invalid credentials")
	ErrPasswordIncorrect     = errors.New("Current password is incorrect")
	ErrPlatformUnsupported   = errors.New("Unsupported platform")
	ErrPlatformAccessDenied  = errors.New("Access denied")
	ErrEventFieldsRequired   = errors.New("Title and date are required")
	ErrEventDateInvalid      = errors.New("Invalid date")
	ErrEventNotFound         = errors.New("Event not found")
	ErrConnectFieldsRequired = errors.New("Missing required fields")
	ErrConnectionNotFound    = errors.New("Social connection not found")
	ErrOAuthStateInvalid     = errors.New("Invalid or expired OAuth state")
	ErrOAuthNotConfigured    = errors.New("OAuth is not configured for this platform")
	ErrFileNotSupported      = errors.New("Unsupported file type")
	ErrStorageDisabled       = errors.New("Object storage is disabled")
	UnExpectedError          = errors.New("Internal server error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUnauthorized:          Unauthorized,
	ErrUserNotFound:          NotFound,
	ErrUserExist:             BadRequest,
	ErrInvalidCredentials:    Unauthorized,
	ErrPasswordIncorrect:     Unauthorized,
	ErrPlatformUnsupported:   BadRequest,
	ErrPlatformAccessDenied:  Forbidden,
	ErrEventFieldsRequired:   BadRequest,
	ErrEventDateInvalid:      BadRequest,
	ErrEventNotFound:         NotFound,
	ErrConnectFieldsRequired: BadRequest,
	ErrConnectionNotFound:    NotFound,
	ErrOAuthStateInvalid:     BadRequest,
	ErrOAuthNotConfigured:    BadRequest,
	ErrFileNotSupported:      BadRequest,
	ErrStorageDisabled:       InternalServerError,
	UnExpectedError:          InternalServerError,
}
