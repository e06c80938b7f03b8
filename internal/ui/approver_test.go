package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestAutoApprover_Approves(t *testing.T) {
	approved, err := NewAutoApprover().RequestApproval(context.Background(), "pg", "slow_query_log")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Fatal("Expected approval")
	}
}

func TestAutoApprover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approved, err := NewAutoApprover().RequestApproval(ctx, "pg", "slow_query_log")
	if err == nil {
		t.Fatal("Expected context cancellation error")
	}
	if approved {
		t.Fatal("Expected denial on cancellation")
	}
}

func TestInteractiveApprover_Answers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"  YES \n", true},
		{"Y", true},
		{"n\n", false},
		{"\n", false},
		{"slow_query_log\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var output bytes.Buffer
			approver := NewInteractiveApprover(strings.NewReader(tt.input), &output)

			approved, err := approver.RequestApproval(context.Background(), "my-database-pg", "slow_query_log")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if approved != tt.want {
				t.Errorf("approved = %v, want %v", approved, tt.want)
			}
			if !tt.want && !strings.Contains(output.String(), "no change made") {
				t.Errorf("Expected cancellation message, got:\n%s", output.String())
			}
		})
	}
}

func TestInteractiveApprover_PromptNamesTarget(t *testing.T) {
	var output bytes.Buffer
	approver := NewInteractiveApprover(strings.NewReader("n\n"), &output)

	_, _ = approver.RequestApproval(context.Background(), "reporting-pg", "general_log")

	out := output.String()
	for _, want := range []string{"general_log", "reporting-pg", "[y/N]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in prompt, got:\n%s", want, out)
		}
	}
}

func TestInteractiveApprover_ReadError(t *testing.T) {
	var output bytes.Buffer
	approver := NewInteractiveApprover(&errorReader{err: io.ErrUnexpectedEOF}, &output)

	approved, err := approver.RequestApproval(context.Background(), "pg", "slow_query_log")
	if err == nil {
		t.Fatal("Expected error for read failure")
	}
	if approved {
		t.Fatal("Expected denial on read error")
	}
	if !strings.Contains(err.Error(), "failed to read input") {
		t.Errorf("Expected read error wrapper, got: %v", err)
	}
}

func TestInteractiveApprover_EmptyStdin(t *testing.T) {
	var output bytes.Buffer
	approver := NewInteractiveApprover(strings.NewReader(""), &output)

	approved, err := approver.RequestApproval(context.Background(), "pg", "slow_query_log")
	if err == nil {
		t.Fatal("Expected error when stdin is closed")
	}
	if approved {
		t.Fatal("Expected denial")
	}
}

func TestInteractiveApprover_ContextCancellation(t *testing.T) {
	var output bytes.Buffer
	input := newBlockingReader()
	t.Cleanup(func() { input.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approved, err := NewInteractiveApprover(input, &output).RequestApproval(ctx, "pg", "slow_query_log")
	if err == nil {
		t.Fatal("Expected context cancellation error")
	}
	if approved {
		t.Fatal("Expected denial on context cancellation")
	}
}

type errorReader struct {
	err error
}

func (r *errorReader) Read([]byte) (int, error) {
	return 0, r.err
}

type blockingReader struct {
	done chan struct{}
}

func newBlockingReader() *blockingReader {
	return &blockingReader{done: make(chan struct{})}
}

func (r *blockingReader) Read([]byte) (int, error) {
	<-r.done
	return 0, io.EOF
}

func (r *blockingReader) Close() error {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
	return nil
}
