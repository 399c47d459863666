package requestutil

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeRequestIDKeepsValidIDs(t *testing.T) {
	if got := SanitizeRequestID("abc-123_DEF"); got != "abc-123_DEF" {
		t.Fatalf("expected incoming id preserved, got %s", got)
	}
}

func TestSanitizeRequestIDReplacesInvalidIDs(t *testing.T) {
	for _, in := range []string{"", "has spaces", "semi;colon", strings.Repeat("a", 65)} {
		got := SanitizeRequestID(in)
		if got == in || got == "" {
			t.Fatalf("expected %q to be replaced, got %q", in, got)
		}
	}
}

func TestNewRequestIDIsUUID(t *testing.T) {
	id := NewRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid, got %q: %v", id, err)
	}
	if !requestIDPattern.MatchString(id) {
		t.Fatalf("expected generated id to pass sanitization, got %q", id)
	}
}

func TestNewRequestIDFallback(t *testing.T) {
	orig := newUUID
	newUUID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") }
	defer func() { newUUID = orig }()

	id := NewRequestID()
	if !requestIDPattern.MatchString(id) {
		t.Fatalf("expected fallback id to pass sanitization, got %q", id)
	}
	if _, err := uuid.Parse(id); err == nil {
		t.Fatalf("expected non-uuid fallback id, got %q", id)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected remote host without port, got %s", got)
	}

	req.RemoteAddr = "203.0.113.7"
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected bare remote addr, got %s", got)
	}

	req.Header.Set("X-Forwarded-For", " 203.0.113.5 , 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.5" {
		t.Fatalf("expected first forwarded ip, got %s", got)
	}

	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty ip for nil request, got %s", got)
	}
}
