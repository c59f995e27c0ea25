package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hifzapp/hifz-api/internal/catalog"
	"github.com/hifzapp/hifz-api/internal/domain"
	"github.com/hifzapp/hifz-api/internal/service"
	"github.com/hifzapp/hifz-api/internal/service/auth"
	"github.com/hifzapp/hifz-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, catalog.ErrChapterNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, store.ErrKeyNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, auth.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrVerseNumberOutOfRange),
		errors.Is(err, domain.ErrInvalidAccuracy),
		errors.Is(err, domain.ErrSessionNoTargets),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyPassword):
		return http.StatusBadRequest

	// Store unavailability is a server-side problem
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication required"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	// Not found errors
	case errors.Is(err, auth.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, catalog.ErrChapterNotFound):
		return "Chapter not found"

	case errors.Is(err, service.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, service.ErrQuizNotFound):
		return "Quiz not found"

	// Conflict errors
	case errors.Is(err, auth.ErrEmailExists):
		return "Email already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrVerseNumberOutOfRange):
		return "Verse number is out of range for this chapter"

	case errors.Is(err, domain.ErrInvalidAccuracy):
		return "Accuracy must be between 0 and 100"

	case errors.Is(err, domain.ErrSessionNoTargets):
		return "Session must target at least one verse"

	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email address"

	case errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return "Password must be between 8 and 72 characters"

	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	case errors.Is(err, store.ErrUnavailable):
		return "Storage temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Email' Error:Field validation for
	// 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt", "gte", "lte":
		return "out of range"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
