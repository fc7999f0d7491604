package commands

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func captureStdout(t *testing.T, run func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	rp, wp, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = wp
	runErr := run()
	_ = wp.Close()
	os.Stdout = old
	out, err := io.ReadAll(rp)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return string(out), runErr
}

func TestRunTermsDefaultsToWholeLine(t *testing.T) {
	color.NoColor = true
	ExitCode = 0
	path := writeInput(t, "foo\nfoo\nbar\n")

	cmd := NewTermsCommand()
	cmd.SetArgs([]string{path})
	out, err := captureStdout(t, cmd.Execute)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
	for _, want := range []string{
		"[foo] [2] ∎∎\n",
		"[bar] [1] ∎\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRunTermsWithRegex(t *testing.T) {
	color.NoColor = true
	ExitCode = 0
	path := writeInput(t, "user=alice\nuser=alice\nuser=bob\n")

	cmd := NewTermsCommand()
	cmd.SetArgs([]string{path, "--regex", `user=(\w+)`})
	out, err := captureStdout(t, cmd.Execute)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{
		"[alice] [2] ∎∎\n",
		"[  bob] [1] ∎\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}
