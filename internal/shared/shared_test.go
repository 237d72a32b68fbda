package shared

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  log.Level
	}{
		{name: "empty defaults to info", input: "", want: log.InfoLevel},
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "mixed case with spaces", input: "  WARN ", want: log.WarnLevel},
		{name: "unknown defaults to info", input: "chatty", want: log.InfoLevel},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "request_id", "abc")
		logger.Info("hello")

		if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "request_id=abc") {
			t.Errorf("unexpected log output: %s", buf.String())
		}
	})

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.WarnLevel)
		logger.Info("quiet")

		if buf.Len() != 0 {
			t.Errorf("expected info to be filtered, got %s", buf.String())
		}
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Error("expected unique IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected uuid string, got %s", a)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("abcdefgh1234"); got != "********1234" {
		t.Errorf("unexpected mask %s", got)
	}
	if got := MaskSecret("abc"); got != "***" {
		t.Errorf("unexpected mask %s", got)
	}
}

func TestAPIError(t *testing.T) {
	t.Run("matches ErrAPIRequest", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", NewAPIError("spotify", http.StatusUnauthorized, "invalid token"))

		if !errors.Is(err, ErrAPIRequest) {
			t.Error("expected error to match ErrAPIRequest")
		}
		if apiErr, _ := IsAPIError(err); apiErr.NotFound() {
			t.Error("401 should not be NotFound")
		}

		apiErr, ok := IsAPIError(err)
		if !ok {
			t.Fatal("expected IsAPIError to unwrap")
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", apiErr.StatusCode)
		}
		if !strings.Contains(err.Error(), "invalid token") {
			t.Errorf("expected message in error string, got %s", err.Error())
		}
	})

	t.Run("404 is NotFound", func(t *testing.T) {
		err := NewAPIError("spotify", http.StatusNotFound, "")
		if !err.NotFound() {
			t.Error("expected 404 to be NotFound")
		}
		if errors.Is(err, ErrTrackNotFound) {
			t.Error("APIError alone should not match ErrTrackNotFound")
		}
		if err.Error() != "spotify API error: status 404" {
			t.Errorf("unexpected error string %s", err.Error())
		}
	})

	t.Run("other errors are not API errors", func(t *testing.T) {
		if _, ok := IsAPIError(ErrDecode); ok {
			t.Error("expected ErrDecode not to be an APIError")
		}
	})
}
