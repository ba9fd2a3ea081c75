package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteWithInput(t *testing.T) {
	out, err := New().ExecuteWithInput(context.Background(), strings.NewReader("from stdin"), "cat")
	if err != nil {
		t.Fatalf("ExecuteWithInput() error = %v", err)
	}
	if out != "from stdin" {
		t.Errorf("ExecuteWithInput() = %q, want %q", out, "from stdin")
	}
}

func TestExecuteFailure(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("Execute() should fail for a missing binary")
	}
	if !strings.Contains(err.Error(), "definitely-not-a-real-binary-xyz") {
		t.Errorf("error should name the command: %v", err)
	}
}
