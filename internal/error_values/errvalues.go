package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	// Returned by repositories on FK violation against users
	ErrOwnerNotFound = errors.New("owner of the record doesn't exist")

	ErrProfileNotFound   = errors.New("profile doesn't exist")
	ErrRemindersNotFound = errors.New("reminder settings don't exist")

	ErrValidation       = errors.New("validation error")
	ErrInvalidDateRange = errors.New("end date is before start date")
)
