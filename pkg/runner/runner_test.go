package runner

import (
	"context"
	"strings"
	"testing"
)

func TestShell_Run(t *testing.T) {
	s := &Shell{}

	out, err := s.Run(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("output = %q, want %q", out, "hello")
	}
}

func TestShell_RunMergesStderr(t *testing.T) {
	s := &Shell{}

	out, err := s.Run(context.Background(), "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out, "out") || !strings.Contains(out, "err") {
		t.Errorf("expected merged stdout and stderr, got %q", out)
	}
}

func TestShell_RunIgnoresExitStatus(t *testing.T) {
	s := &Shell{}

	out, err := s.Run(context.Background(), "echo boom; exit 3")
	if err != nil {
		t.Fatalf("expected non-zero exit to be ignored, got error: %v", err)
	}
	if strings.TrimSpace(out) != "boom" {
		t.Errorf("output = %q, want %q", out, "boom")
	}
}

func TestShell_RunCanceledContext(t *testing.T) {
	s := &Shell{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Run(ctx, "echo hello"); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestCommandTool(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"kubectl config current-context", "kubectl"},
		{"gcloud container clusters list", "gcloud"},
		{"   ", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := commandTool(tt.command); got != tt.want {
			t.Errorf("commandTool(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}
