package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidRole       = errors.New("role must be Admin, Clerk or Employee")
	ErrDirectoryNotEmpty = errors.New("first account can only be created in an empty directory")
)
