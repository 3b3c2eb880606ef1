package errors

import (
	"errors"
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
// Store sentinels get distinct codes so the UI can render not-found and
// save-toggle conditions instead of a generic failure.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case errors.Is(err, ErrPropertyNotFound):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgPropertyNotFound,
			Code:             ErrCodePropertyNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case errors.Is(err, ErrAlreadySaved):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgAlreadySaved,
			Code:             ErrCodeAlreadySaved,
			HTTPStatus:       http.StatusConflict,
			OriginalError:    err,
		}
	case errors.Is(err, ErrNotSaved):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgNotSaved,
			Code:             ErrCodeNotSaved,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "database query failed"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             "INTERNAL_ERROR",
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
