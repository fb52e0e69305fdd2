package scenario

import "errors"

// Selection errors.
var (
	ErrNoCities      = errors.New("scenario: no cities selected")
	ErrHomeSelected  = errors.New("scenario: home city must not be among the selected cities")
	ErrTooFewCities  = errors.New("scenario: too few cities selected")
	ErrTooManyCities = errors.New("scenario: too many cities selected")
	ErrDuplicateCity = errors.New("scenario: city selected more than once")
	ErrEmptyName     = errors.New("scenario: empty city name")
)

// Path errors.
var (
	ErrEmptyPath      = errors.New("scenario: empty path")
	ErrPathTooShort   = errors.New("scenario: path too short")
	ErrPathEndpoints  = errors.New("scenario: path must start and end at home")
	ErrWrongStopCount = errors.New("scenario: wrong number of stops")
	ErrMissingCities  = errors.New("scenario: missing cities")
	ErrExtraCities    = errors.New("scenario: extra cities")
	ErrDuplicateVisit = errors.New("scenario: city visited more than once")
)

// File and data errors.
var (
	ErrBadDistances      = errors.New("scenario: invalid distance table")
	ErrUnknownCity       = errors.New("scenario: unknown city")
	ErrUnsupportedFormat = errors.New("scenario: unsupported file format")
	ErrNoResults         = errors.New("scenario: no algorithm results to compare against")
)
