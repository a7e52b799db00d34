package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/quillacademy/api/internal/app/models/dto"
	"github.com/quillacademy/api/internal/pkg/apperrors"
	"github.com/quillacademy/api/internal/pkg/logger"
)

// HandleAPIError converts a handler failure into a structured error response.
// Every failure path terminates here so a downstream fault never escapes a
// request's scope. Note that duplicate-guard hits are NOT errors in this API:
// controllers answer those with 200 and a message field before reaching this
// translator.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidObjectID):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidObjectID, "Identifier is not a valid object id"),
		))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, apperrors.ErrDownstreamTimedOut):
		c.JSON(504, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTimeout, "Downstream call timed out"),
		))
	case errors.Is(err, apperrors.ErrPaymentGateway):
		c.JSON(502, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Payment gateway error"),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled request error")
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
