package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/quillacademy/api/internal/app/controllers"
	"github.com/quillacademy/api/internal/config"
)

func newTestDependencies() *Dependencies {
	return &Dependencies{
		ClassController:          controllers.NewClassController(nil),
		UserController:           controllers.NewUserController(nil),
		PaymentController:        controllers.NewPaymentController(nil),
		TeacherRequestController: controllers.NewTeacherRequestController(nil),
		AssignmentController:     controllers.NewAssignmentController(nil),
		FeedbackController:       controllers.NewFeedbackController(nil),
		StatsController:          controllers.NewStatsController(nil),
	}
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.Server.RequestTimeout = "15s"
	cfg.CORS.AllowOrigins = []string{"*"}
	return cfg
}

func TestRootLivenessAnswersPlainText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(newTestConfig(), newTestDependencies(), zerolog.Nop())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "Server is running!" {
		t.Errorf("body = %q, want plain liveness text", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(newTestConfig(), newTestDependencies(), zerolog.Nop())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s, want status ok", w.Body.String())
	}
}
