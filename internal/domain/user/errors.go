package user

import "errors"

var (
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrCompanyIDRequired       = errors.New("user is not attached to a company")
	ErrEmployeeIDRequired      = errors.New("user is not registered as an employee")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
