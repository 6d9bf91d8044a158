package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feewhiz/feewhiz/internal/fee"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		details bool
	}{
		{"invalid amount", fmt.Errorf("%w: got -1", fee.ErrInvalidAmount), http.StatusBadRequest, true},
		{"unknown platform", fmt.Errorf("%w: %q", fee.ErrUnknownPlatform, "venmo"), http.StatusNotFound, false},
		{"unknown transaction type", fee.ErrUnknownTransactionType, http.StatusNotFound, false},
		{"no rows", fmt.Errorf("load: %w", pgx.ErrNoRows), http.StatusNotFound, false},
		{"unavailable", fmt.Errorf("%w: stripe: %w", fee.ErrPlatformUnavailable, errors.New("bad json")), http.StatusServiceUnavailable, false},
		{"unavailable after missing default type", fmt.Errorf("%w: stripe: %w", fee.ErrPlatformUnavailable,
			fmt.Errorf("compile stripe: %w", fee.ErrUnknownTransactionType)), http.StatusServiceUnavailable, false},
		{"unavailable after no stored row", fmt.Errorf("%w: adyen: %w", fee.ErrPlatformUnavailable,
			fmt.Errorf("load adyen rate document: %w", pgx.ErrNoRows)), http.StatusServiceUnavailable, false},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, false},
		{"deadline", fmt.Errorf("quote: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, false},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := MapError(tc.err)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, resp.Error)
			if tc.details {
				assert.Equal(t, tc.err.Error(), resp.Details)
			} else {
				assert.Empty(t, resp.Details)
			}
		})
	}

	t.Run("internal errors are not exposed", func(t *testing.T) {
		_, resp := MapError(errors.New("connection refused on 10.0.0.5"))
		assert.Equal(t, "internal server error", resp.Error)
	})
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(fee.ErrUnknownPlatform)
	})
	router.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
	})

	t.Run("renders last error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unable to calculate", resp.Error)
		assert.Equal(t, Hint, resp.Hint)
	})

	t.Run("leaves written responses alone", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/written", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})
}

func TestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Logger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}
