package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/feewhiz/feewhiz/internal/fee"
)

const (
	msgUnableToCalculate = "unable to calculate"
	Hint                 = "check amount, platform and transaction type"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// MapError turns an error into a status and a body that is safe to show to
// users. Internal error kinds are only exposed for amount validation.
func MapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, fee.ErrInvalidAmount):
		return http.StatusBadRequest, ErrorResponse{
			Error:   msgUnableToCalculate,
			Details: err.Error(),
			Hint:    Hint,
		}
	// Checked before the not-found kinds: the load failure it wraps may
	// itself be one of them.
	case errors.Is(err, fee.ErrPlatformUnavailable):
		log.Warn().Err(err).Msg("request for unavailable platform")
		return http.StatusServiceUnavailable, ErrorResponse{
			Error: msgUnableToCalculate,
			Hint:  "this platform's fee data is temporarily unavailable, try another platform",
		}
	case errors.Is(err, fee.ErrUnknownPlatform),
		errors.Is(err, fee.ErrUnknownTransactionType),
		errors.Is(err, pgx.ErrNoRows):
		return http.StatusNotFound, ErrorResponse{
			Error: msgUnableToCalculate,
			Hint:  Hint,
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorResponse{Error: "request cancelled"}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
