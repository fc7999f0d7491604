package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func writeInput(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.log")
	if err := os.WriteFile(path, []byte(lines), 0o600); err != nil {
		t.Fatalf("Failed to create input file: %v", err)
	}
	return path
}

func TestRunHistNotEnoughData(t *testing.T) {
	ExitCode = 0
	path := writeInput(t, "no numbers here\n")

	cmd := NewHistCommand()
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunHistMissingFile(t *testing.T) {
	ExitCode = 0

	cmd := NewHistCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.log")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunHistBadRegex(t *testing.T) {
	ExitCode = 0
	path := writeInput(t, "1\n2\n")

	cmd := NewHistCommand()
	cmd.SetArgs([]string{path, "--regex", "("})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("Execute with a broken regex succeeded, want error")
	}
}

func TestRunTermsRequiresPositiveLines(t *testing.T) {
	path := writeInput(t, "a\n")

	cmd := NewTermsCommand()
	cmd.SetArgs([]string{path, "--lines", "0", "--regex", "(a)"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("Execute with --lines 0 succeeded, want error")
	}
}

func TestRunSplitTimeHistTooManyTerms(t *testing.T) {
	path := writeInput(t, "[2021-04-15T06:25:31+00:00] foo\n")

	cmd := NewSplitTimeHistCommand()
	cmd.SetArgs([]string{path, "a", "b", "c", "d", "e", "f"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("Execute with six terms succeeded, want error")
	}
}

func TestRunTimeHistBadDuration(t *testing.T) {
	path := writeInput(t, "[2021-04-15T06:25:31+00:00] foo\n")

	cmd := NewTimeHistCommand()
	cmd.SetArgs([]string{path, "--duration", "bogus"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("Execute with a bad duration succeeded, want error")
	}
}
