package domain

import "errors"

// Auth errors. ErrInvalidCredentials deliberately covers both unknown-username
// and wrong-password so failed logins never reveal whether an account exists.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrForbidden          = errors.New("access forbidden")
)

// Lookup errors.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrSiteNotFound     = errors.New("site not found")
	ErrBuildingNotFound = errors.New("building not found")
	ErrUnitNotFound     = errors.New("building unit not found")
	ErrOwnerNotFound    = errors.New("owner not found")
)

// Uniqueness violations.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

// Enumeration violations, returned by the Parse* helpers.
var (
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidCompensation = errors.New("invalid compensation type")
	ErrInvalidLeadStatus   = errors.New("invalid lead status")
	ErrInvalidUnitStatus   = errors.New("invalid unit status")
	ErrInvalidUnitType     = errors.New("invalid unit type")
)
