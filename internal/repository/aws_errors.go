package repository

import (
	"errors"

	"github.com/aws/smithy-go"
)

// IsNotFound reports whether err carries a provider not-found code.
func IsNotFound(err error) bool {
	switch apiErrorCode(err) {
	case "NotFoundException", "ResourceNotFoundException":
		return true
	}
	return false
}

// IsConflict reports whether err carries a provider conflict code.
func IsConflict(err error) bool {
	switch apiErrorCode(err) {
	case "ConflictException", "ResourceConflictException":
		return true
	}
	return false
}

func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func apiErrorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMessage()
	}
	return ""
}
