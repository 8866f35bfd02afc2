package httpapi

import (
	"context"
	"testing"
)

func TestSetMaxBodyBytes(t *testing.T) {
	SetMaxBodyBytes(-1)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(1234)
	if maxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB on zero, got %d", maxBodyBytes)
	}
}

func TestSetCORSOptions_Defaults(t *testing.T) {
	SetCORSOptions(true, []string{"https://a.example"}, nil, nil)
	defer SetCORSOptions(false, nil, nil, nil)
	if !corsEnabled || len(corsAllowedOrigins) != 1 {
		t.Fatalf("unexpected cors state: %v %v", corsEnabled, corsAllowedOrigins)
	}
	if len(corsAllowedMethods) == 0 || len(corsAllowedHeaders) == 0 {
		t.Fatalf("expected default methods and headers")
	}
}

func TestSetBaseContext_NilResetsToBackground(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	SetBaseContext(ctx)
	cancel()
	if serverBaseCtx.Err() == nil {
		t.Fatalf("expected canceled base context")
	}
	// nolint:staticcheck // SA1012: this test intentionally passes nil to verify fallback behavior
	SetBaseContext(nil)
	if serverBaseCtx.Err() != nil {
		t.Fatalf("nil must reset to Background")
	}
}
