package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

var errSample = NewError(http.StatusBadGateway, "Failed to fetch anatomy information")

func TestWithDetailsKeepsIdentity(t *testing.T) {
	err := WithDetails(errSample, "quota exceeded")

	if !errors.Is(err, errSample) {
		t.Fatal("detailed error should match its sentinel")
	}

	var respErr *Error
	if !errors.As(err, &respErr) {
		t.Fatal("expected *Error")
	}
	if respErr.Details != "quota exceeded" || respErr.Code != http.StatusBadGateway {
		t.Errorf("got code %d details %q", respErr.Code, respErr.Details)
	}
	if err.Error() != "Failed to fetch anatomy information" {
		t.Errorf("message changed: %q", err.Error())
	}
}

func TestWithDetailsPassesThroughPlainErrors(t *testing.T) {
	plain := fmt.Errorf("boom")
	if got := WithDetails(plain, "x"); got != plain {
		t.Errorf("plain error should be returned unchanged")
	}
}

func TestIsComparesCodeAndMessage(t *testing.T) {
	other := NewError(http.StatusInternalServerError, "Failed to fetch anatomy information")
	if errors.Is(errSample, other) {
		t.Error("different codes must not match")
	}
}
