package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrWrongPassword        = errors.New("wrong password")

	ErrVersionIsNotSpecified = errors.New("build version is not specified")
)

// AccountExistsError carries the name rejected by [AccountService.Register].
// It matches [ErrAccountAlreadyExists] with errors.Is.
type AccountExistsError struct {
	Name string
}

func (e *AccountExistsError) Error() string {
	return fmt.Sprintf("account %q already exists", e.Name)
}

func (e *AccountExistsError) Is(target error) bool {
	return target == ErrAccountAlreadyExists
}
