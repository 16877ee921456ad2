package oauth

import (
	"encoding/base64"
	"testing"
)

func TestGenerateState(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})

	first := svc.GenerateState()
	second := svc.GenerateState()

	if first == "" || second == "" {
		t.Fatal("expected non-empty state")
	}
	if first == second {
		t.Error("expected a fresh state per call")
	}

	raw, err := base64.URLEncoding.DecodeString(first)
	if err != nil {
		t.Fatalf("state is not URL-safe base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("expected 32 bytes of entropy, got %d", len(raw))
	}
}
