package youtube

import (
	"context"
	"testing"
)

func TestNewAPIClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{"empty key", "", true},
		{"valid key", "test-api-key-12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewAPIClient(context.Background(), tt.apiKey, 2.0)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAPIClient() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && client == nil {
				t.Error("NewAPIClient() returned nil client for valid key")
			}
		})
	}
}

func TestNewAPIClientNoPacing(t *testing.T) {
	client, err := NewAPIClient(context.Background(), "test-key", 0)
	if err != nil {
		t.Fatalf("NewAPIClient() error = %v", err)
	}
	if client.pace != nil {
		t.Error("pace should be nil when pagesPerSecond is 0")
	}
	if err := client.wait(context.Background()); err != nil {
		t.Errorf("wait() with nil limiter error = %v", err)
	}
}

func TestListerErrorUnwrap(t *testing.T) {
	err := &ListerError{Op: "channel", Channel: "UCabc", Err: ErrChannelNotFound}
	if err.Unwrap() != ErrChannelNotFound {
		t.Error("Unwrap() should return the underlying error")
	}
	if err.Error() == "" {
		t.Error("Error() should describe the failure")
	}
}
