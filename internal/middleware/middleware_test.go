package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quillacademy/api/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid object id", apperrors.ErrInvalidObjectID, 400},
		{"validation failure", apperrors.NewBadRequestError("bad input"), 400},
		{"deadline exceeded", context.DeadlineExceeded, 504},
		{"wrapped deadline", errors.Join(errors.New("store call"), context.DeadlineExceeded), 504},
		{"downstream timeout", apperrors.ErrDownstreamTimedOut, 504},
		{"payment gateway", apperrors.ErrPaymentGateway, 502},
		{"unknown failure", errors.New("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if !strings.Contains(w.Body.String(), `"error"`) {
				t.Errorf("body = %s, want structured error envelope", w.Body.String())
			}
		})
	}
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("response missing generated request id header")
	}
}

func TestRequestIDEchoesCallerValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id-42")
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "caller-id-42" {
		t.Errorf("request id = %q, want caller-id-42", got)
	}
}

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestTimeout(50 * time.Millisecond))

	var hadDeadline bool
	router.GET("/", func(c *gin.Context) {
		_, hadDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if !hadDeadline {
		t.Error("request context carries no deadline")
	}
}
