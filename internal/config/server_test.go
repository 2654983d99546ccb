package config

import (
	"AnatomyOverlay/internal/entity"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewServerRequiresFiberAndLogger(t *testing.T) {
	if _, err := NewServer(WithLogger(testLogger())); err == nil {
		t.Error("expected an error without a fiber app")
	}
	if _, err := NewServer(WithFiber(fiber.New())); err == nil {
		t.Error("expected an error without a logger")
	}
}

func TestMiddlewareNeedsLogger(t *testing.T) {
	if _, err := NewServer(WithMiddleware(), WithFiber(fiber.New()), WithLogger(testLogger())); err == nil {
		t.Error("WithMiddleware before WithLogger should fail")
	}
}

func TestNewServerRejectsBadViewportEnv(t *testing.T) {
	t.Setenv("RIG_DEPTH_MODE", "sideways")

	if _, err := NewServer(WithFiber(fiber.New()), WithLogger(testLogger())); err == nil {
		t.Error("expected an error for an unknown depth mode")
	}
}

func TestServerWithoutBackends(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	logger := testLogger()
	server, err := NewServer(
		WithFiber(NewFiber(logger)),
		WithLogger(logger),
		WithValidator(NewValidator()),
		WithMiddleware(),
		WithViewport(entity.Viewport{Aspect: 1}),
	)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	server.RegisterHandler()
	server.Mount()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{fiber.MethodGet, "/", fiber.StatusOK},
		{fiber.MethodGet, "/api/v1/rig/bones", fiber.StatusOK},
		{fiber.MethodGet, "/api/v1/anatomy/structures", fiber.StatusOK},
		{fiber.MethodGet, "/api/v1/assets/models", fiber.StatusServiceUnavailable},
		{fiber.MethodGet, "/api/v1/hand/bone/hamate", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		resp, err := server.engine.Test(httptest.NewRequest(tt.method, tt.path, nil))
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if resp.StatusCode != tt.status {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.status)
		}
	}
}

func TestHealthCheckReportsBackends(t *testing.T) {
	logger := testLogger()
	server, err := NewServer(WithFiber(fiber.New()), WithLogger(logger), WithViewport(entity.Viewport{Aspect: 1}))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	server.RegisterHandler()

	resp, err := server.engine.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}

	var body struct {
		Message  string          `json:"message"`
		Backends map[string]bool `json:"backends"`
	}
	if err := jsoniter.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Server is Healthy!" {
		t.Errorf("message = %q", body.Message)
	}
	for name, up := range body.Backends {
		if up {
			t.Errorf("backend %s reported as configured", name)
		}
	}
	if len(body.Backends) != 7 {
		t.Errorf("backends = %v", body.Backends)
	}
}

func TestValidatorUsesJSONNames(t *testing.T) {
	type body struct {
		Description string `json:"description" validate:"required"`
	}

	err := NewValidator().Struct(body{})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if got := err.Error(); !strings.Contains(got, "'description'") {
		t.Errorf("error should use the json field name: %s", got)
	}
}
