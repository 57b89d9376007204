package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/parameter"
)

// isolate runs the test in an empty directory without ROBOT_SOCCER_* overrides
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(io.Discard) })
	for _, key := range []string{
		parameter.EnvDisplay, parameter.EnvColor, parameter.EnvTick, parameter.EnvMaxTicks,
		parameter.EnvAudio, parameter.EnvDebug, parameter.EnvLogDir,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRunRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"negative radius", []string{"-1", "10", "5", "3", "0.1"}, "negative"},
		{"too few", []string{"10", "10", "5"}, "there must be 5 arguments, got 3"},
		{"too many", []string{"1", "2", "3", "4", "5", "6"}, "got 6"},
		{"not a number", []string{"10", "ten", "5", "3", "0.1"}, "enemyRadius"},
		{"unknown flag", []string{"-bogus", "10", "10", "5", "3", "0.1"}, "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			if code != exitUsage {
				t.Errorf("exit = %d, want %d", code, exitUsage)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr %q does not mention %q", stderr.String(), tt.want)
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Error("expected usage on stderr")
			}
			if stdout.Len() != 0 {
				t.Errorf("unexpected stdout %q", stdout.String())
			}
		})
	}
}

func TestRunHeadlessReachesOutcome(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	args := []string{"-display", "headless", "-tick", "1ms", "-audio=false", "10", "10", "5", "3", "0.1"}
	if code := run(args, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, constant.MessageGoal) && !strings.Contains(out, constant.MessageExhausted) {
		t.Errorf("stdout %q carries no end message", out)
	}
	if !strings.Contains(stderr.String(), "Starting:") {
		t.Errorf("headless mode should log to stderr, got %q", stderr.String())
	}
}

func TestRunHeadlessTickLimit(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	// Without friction the player needs far more than three ticks to reach the goal
	args := []string{"-display", "headless", "-tick", "1ms", "-max-ticks", "3", "-audio=false", "10", "10", "5", "3", "0"}
	if code := run(args, &stdout, &stderr); code != exitFailure {
		t.Fatalf("exit = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr.String(), "tick limit") {
		t.Errorf("stderr %q does not mention the tick limit", stderr.String())
	}
}

func TestRunSettingsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := "display = \"headless\"\naudio = false\ntick_interval = \"1ms\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-config", path, "10", "10", "5", "3", "0.1"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() == 0 {
		t.Error("expected the end message on stdout")
	}
}

func TestRunMissingExplicitConfig(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-config", "nope.toml", "10", "10", "5", "3", "0.1"}, &stdout, &stderr)
	if code != exitUsage {
		t.Errorf("exit = %d, want %d", code, exitUsage)
	}
}

func TestSplitArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("display", "", "")
	fs.Uint64("max-ticks", 0, "")
	fs.Bool("audio", true, "")

	tests := []struct {
		name       string
		args       []string
		flags      []string
		positional []string
	}{
		{"positional only", []string{"1", "2"}, []string{}, []string{"1", "2"}},
		{"negative first", []string{"-1", "2"}, []string{}, []string{"-1", "2"}},
		{"numeric flag value", []string{"-max-ticks", "100", "1"}, []string{"-max-ticks", "100"}, []string{"1"}},
		{"bool flag", []string{"-audio", "1"}, []string{"-audio"}, []string{"1"}},
		{"inline value", []string{"-display=headless", "-2"}, []string{"-display=headless"}, []string{"-2"}},
		{"terminator", []string{"-audio", "--", "3"}, []string{"-audio"}, []string{"3"}},
		{"flags only", []string{"-audio"}, []string{"-audio"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, positional := splitArgs(fs, tt.args)
			if len(flags) != len(tt.flags) || (len(flags) > 0 && !reflect.DeepEqual(flags, tt.flags)) {
				t.Errorf("flags = %v, want %v", flags, tt.flags)
			}
			if !reflect.DeepEqual(positional, tt.positional) {
				t.Errorf("positional = %v, want %v", positional, tt.positional)
			}
		})
	}
}
