package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/logknife/logknife/internal/app"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTailCommand(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")
	if err := os.WriteFile(logPath, []byte("a error x\nb ok\nc error y\nd ok\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := runCmd(t, "tail", logPath, "-n", "3", "--include", "error", "--color", "never")
	if err != nil {
		t.Fatalf("tail error = %v", err)
	}
	if want := "c error y\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")
	if err := os.WriteFile(logPath, []byte("WARN disk\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "color = \"always\"\nhighlight = [\"WARN\"]\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := runCmd(t, "tail", logPath, "--config", cfgPath)
	if err != nil {
		t.Fatalf("tail error = %v", err)
	}
	if want := "\x1b[33mWARN\x1b[0m disk\n"; got != want {
		t.Fatalf("config output = %q, want %q", got, want)
	}

	got, err = runCmd(t, "tail", logPath, "--config", cfgPath, "--color", "never")
	if err != nil {
		t.Fatalf("tail error = %v", err)
	}
	if want := "WARN disk\n"; got != want {
		t.Fatalf("flag override output = %q, want %q", got, want)
	}
}

func TestUsageErrorsExitTwo(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: []string{}},
		{name: "unknown command", args: []string{"frobnicate", "x.log"}},
		{name: "missing file", args: []string{"tail"}},
		{name: "extra args", args: []string{"follow", "a.log", "b.log"}},
		{name: "unknown flag", args: []string{"tail", "a.log", "--bogus"}},
		{name: "bad lines value", args: []string{"tail", "a.log", "-n", "many"}},
		{name: "bad engine", args: []string{"tail", "a.log", "--engine", "pcre"}},
		{name: "unknown theme", args: []string{"tail", "a.log", "--theme", "neon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			if got := app.ExitCode(err); got != 2 {
				t.Fatalf("ExitCode(%v) = %d, want 2", err, got)
			}
		})
	}
}

func TestMissingFileExitsOne(t *testing.T) {
	_, err := runCmd(t, "tail", filepath.Join(t.TempDir(), "missing.log"))
	if got := app.ExitCode(err); got != 1 {
		t.Fatalf("ExitCode(%v) = %d, want 1", err, got)
	}
}

func TestOptionsFromFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	follow, _, err := cmd.Find([]string{"follow"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := follow.ParseFlags([]string{"--interval", "1", "-n", "0", "--since", "5m", "--notify"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	// ParseFlags marks which flags changed; the values come from f.
	f := &flags{intervalMS: 1, since: "5m", notify: true}
	opts, err := f.options(follow, "x.log")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Interval != 10*time.Millisecond {
		t.Errorf("Interval = %v, want 10ms", opts.Interval)
	}
	if opts.TailLines != -1 {
		t.Errorf("TailLines = %d, want -1 for an explicit -n 0", opts.TailLines)
	}
	if !opts.Notify || opts.Since != "5m" || opts.Path != "x.log" {
		t.Errorf("options = %+v", opts)
	}
}

func TestThemeFlagListsThemes(t *testing.T) {
	flag := newRootCmd().PersistentFlags().Lookup("theme")
	if flag == nil {
		t.Fatalf("--theme flag missing")
	}
	if want := "default or bright"; !strings.Contains(flag.Usage, want) {
		t.Fatalf("--theme usage = %q, want it to list %q", flag.Usage, want)
	}
}
