package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{"plain", Command{Name: "npm", Args: []string{"run", "lint"}}, "npm run lint"},
		{"glob kept verbatim", Command{Name: "npx", Args: []string{"prettier", "./**/*.{js,json}", "--write"}}, "npx prettier ./**/*.{js,json} --write"},
		{"space quoted", Command{Name: "echo", Args: []string{"a b"}}, `echo "a b"`},
		{"no args", Command{Name: "git"}, "git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSucceeded(t *testing.T) {
	if !Succeeded(&Output{ExitCode: 0}, nil) {
		t.Error("zero exit without error should succeed")
	}
	if Succeeded(&Output{ExitCode: 1}, nil) {
		t.Error("non-zero exit should fail")
	}
	if Succeeded(nil, errors.New("boom")) {
		t.Error("error should fail")
	}
	if Succeeded(nil, nil) {
		t.Error("missing output should fail")
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), Command{Name: "definitely-not-a-real-binary-xyz"})
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}

func TestExecRunner_StreamsOutput(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	var stdout, stderr bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &stderr}

	out, err := r.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo hello; echo oops >&2"},
		Dir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
	if got := strings.TrimSpace(stdout.String()); got != "hello" {
		t.Errorf("stdout = %q, want %q", got, "hello")
	}
	if got := strings.TrimSpace(stderr.String()); got != "oops" {
		t.Errorf("stderr = %q, want %q", got, "oops")
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	var discard bytes.Buffer
	r := &ExecRunner{Stdout: &discard, Stderr: &discard}

	out, err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 42"}})
	if err != nil {
		t.Fatalf("unexpected error (non-zero exit should not be an error): %v", err)
	}
	if out.ExitCode != 42 {
		t.Errorf("ExitCode = %d, want 42", out.ExitCode)
	}
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	dir := t.TempDir()
	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &stdout}

	if _, err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "pwd"}, Dir: dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// macOS resolves temp dirs through /private.
	if got := strings.TrimSpace(stdout.String()); !strings.HasSuffix(got, dir) {
		t.Errorf("pwd = %q, want %q", got, dir)
	}
}
