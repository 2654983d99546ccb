package partapi

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var ErrPartNotFound = errors.New("part not found upstream")

type IPartAPI interface {
	Fetch(partID string) (map[string]interface{}, error)
}

type partClient struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// New reads PART_API_ENDPOINT and PART_API_KEY. The key falls back to
// OPENAI_API_KEY when unset.
func New() (IPartAPI, error) {
	endpoint := strings.TrimRight(os.Getenv("PART_API_ENDPOINT"), "/")
	if endpoint == "" {
		return nil, errors.New("PART_API_ENDPOINT is not set")
	}

	apiKey := os.Getenv("PART_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return NewWithEndpoint(endpoint, apiKey, 8*time.Second), nil
}

func NewWithEndpoint(endpoint, apiKey string, timeout time.Duration) IPartAPI {
	return &partClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		timeout:  timeout,
	}
}

func (p *partClient) Fetch(partID string) (map[string]interface{}, error) {
	agent := fiber.Get(p.endpoint + "/" + url.PathEscape(partID))
	agent.Timeout(p.timeout)
	agent.ContentType(fiber.MIMEApplicationJSON)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+p.apiKey)
	agent.Set("X-API-Key", p.apiKey)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("part api request: %w", errors.Join(errs...))
	}

	if code == fiber.StatusNotFound {
		return nil, ErrPartNotFound
	}
	if code < 200 || code >= 300 {
		return nil, fmt.Errorf("part api returned status %d", code)
	}

	doc := map[string]interface{}{}
	if err := jsoniter.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode part api response: %w", err)
	}

	return doc, nil
}
