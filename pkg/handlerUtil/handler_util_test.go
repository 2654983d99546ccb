package handlerUtil

import (
	"AnatomyOverlay/internal/api/anatomy"
	"AnatomyOverlay/pkg/response"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func run(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return New(logger).Handle(c, "req-1", err, c.Path(), "test")
	})

	resp, testErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if testErr != nil {
		t.Fatalf("app.Test: %v", testErr)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := jsoniter.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, body
}

func TestHandleResponseError(t *testing.T) {
	status, body := run(t, response.WithDetails(anatomy.ErrAnatomyUpstream, "quota exceeded"))
	if status != fiber.StatusBadGateway {
		t.Errorf("status = %d", status)
	}
	if body["error"] != "Failed to fetch anatomy information" || body["details"] != "quota exceeded" {
		t.Errorf("body = %v", body)
	}
}

func TestHandlePartLookupEnvelope(t *testing.T) {
	status, body := run(t, response.WithDetails(anatomy.ErrPartLookup, "upstream down"))
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d", status)
	}
	if body["error"] != "Failed to fetch bone data" || body["message"] != "upstream down" {
		t.Errorf("body = %v", body)
	}
}

func TestHandleFiberError(t *testing.T) {
	status, body := run(t, fiber.ErrUpgradeRequired)
	if status != fiber.StatusUpgradeRequired || body["error"] != "Upgrade Required" {
		t.Errorf("status = %d, body = %v", status, body)
	}
}

func TestHandleUnexpectedError(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	status, body := run(t, errors.New("boom"))
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d", status)
	}
	if body["error"] != "An unexpected error occurred" {
		t.Errorf("body = %v", body)
	}
	if body["traceId"] != "req-1" {
		t.Errorf("traceId should reuse the request id, got %v", body["traceId"])
	}
}
