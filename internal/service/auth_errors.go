package service

import (
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
)

// AuthErrorMessage translates Firebase auth errors into the strings shown to
// users. Anything unrecognized collapses to a generic message.
func AuthErrorMessage(err error) string {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return "This email is already registered. Please sign in instead."
	case auth.IsUserNotFound(err):
		return "Invalid email or password"
	case errorutils.IsInvalidArgument(err):
		return "Please enter a valid email address"
	case errorutils.IsUnavailable(err):
		return "Network error. Please check your connection and try again."
	}
	return "Authentication failed"
}
