package organization

import "errors"

var (
	ErrOfficeLocationNotFound = errors.New("office location not found")
	ErrOfficeLocationInvalid  = errors.New("office location has invalid coordinates")
)
