// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the
// shortage-keeper shell.
//
// All Msg* constants are human-readable strings shown to the person at the
// terminal. Keeping them in one place ensures consistent wording across
// screens.
package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-shortage-keeper/internal/service"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

const (
	// MsgWelcome is the greeting of the login screen.
	MsgWelcome = "Welcome to shortage management application"

	// MsgRegistrationSuccessful is shown after an account has been created.
	// The new account is logged in right away.
	MsgRegistrationSuccessful = "Registration successful"

	// MsgLoginSuccessful is shown after a successful login.
	MsgLoginSuccessful = "Login successful"

	// MsgUserAlreadyExists is the format of the duplicate-registration message.
	MsgUserAlreadyExists = "User '%s' already exists"

	// MsgUserDoesNotExist is shown when logging in with an unknown name.
	MsgUserDoesNotExist = "User does not exist"

	// MsgPasswordDoesNotMatch is shown when the password hash does not match.
	MsgPasswordDoesNotMatch = "Password does not match"

	// MsgInvalidDataProvided is shown for input that failed validation
	// without a more specific reason.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidPriority is shown when the priority field is not an integer
	// between 1 and 10.
	MsgInvalidPriority = "Invalid priority. Please enter a number between 1 and 10."

	// MsgNoShortagesFound is shown for an empty listing.
	MsgNoShortagesFound = "No shortages found"

	// MsgCopiedToClipboard confirms a clipboard copy from the list screen.
	MsgCopiedToClipboard = "Shortage copied to clipboard"

	// MsgClipboardUnavailable is shown when no clipboard utility is present.
	MsgClipboardUnavailable = "Clipboard is not available"

	// MsgInternalError is shown for failures the user cannot resolve, such
	// as a store file that cannot be written.
	MsgInternalError = "Something went wrong, see the log file for details"
)

// ErrInvalidPriority is returned by the shell when the priority field is not
// an integer.
var ErrInvalidPriority = errors.New("priority is not an integer")

// ErrorMessage maps an error returned by the core to the message shown to
// the user. Validation errors surface their reason.
func ErrorMessage(err error) string {
	var existsErr *service.AccountExistsError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &existsErr):
		return fmt.Sprintf(MsgUserAlreadyExists, existsErr.Name)
	case errors.Is(err, ErrInvalidPriority):
		return MsgInvalidPriority
	case errors.Is(err, service.ErrAccountNotFound):
		return MsgUserDoesNotExist
	case errors.Is(err, service.ErrWrongPassword):
		return MsgPasswordDoesNotMatch
	case errors.Is(err, models.ErrValidation):
		return validationReason(err)
	case errors.Is(err, service.ErrInvalidDataProvided):
		return MsgInvalidDataProvided
	default:
		return MsgInternalError
	}
}

// validationReason extracts the text following the last "validation error: "
// marker of err and capitalizes it.
func validationReason(err error) string {
	msg := err.Error()
	marker := models.ErrValidation.Error() + ": "

	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return MsgInvalidDataProvided
	}

	reason := msg[i+len(marker):]
	if reason == "" {
		return MsgInvalidDataProvided
	}

	r, size := utf8.DecodeRuneInString(reason)
	return string(unicode.ToUpper(r)) + reason[size:]
}
