//go:build !windows

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeBot writes an executable shell script standing in for the bot.
func writeBot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStart_PassesLaunchArguments(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	bot := writeBot(t, `printf '%s\n' "$@" > "`+argsFile+`"`)

	out, err := execute(t, "start", "--executable", bot, "--tower", "213576498", "--stage", "6", "--method", "Plain Bob")
	if err != nil {
		t.Fatalf("start error = %v", err)
	}
	if !strings.Contains(out, "Ringing Plain Bob Minor at tower 213576498") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Bot exited") {
		t.Errorf("output missing exit notice: %q", out)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	want := []string{"213576498", "--method", "Plain Bob Minor"}
	if len(got) != len(want) {
		t.Fatalf("args = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStart_ReportsBotFailure(t *testing.T) {
	bot := writeBot(t, "exit 3")

	_, err := execute(t, "start", "--executable", bot)
	if err == nil {
		t.Fatal("expected error for failing bot")
	}
	if !strings.Contains(err.Error(), "bot exited") {
		t.Errorf("error = %v", err)
	}
}

func TestStart_StageTwoLaunchesWithBareMethod(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	bot := writeBot(t, `printf '%s\n' "$@" > "`+argsFile+`"`)

	out, err := execute(t, "start", "--executable", bot, "--stage", "2", "--method", "Plain Bob")
	if err != nil {
		t.Fatalf("start error = %v", err)
	}
	if !strings.Contains(out, "no name for stage") {
		t.Errorf("output missing stage warning: %q", out)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("bot did not run: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3 || lines[2] != "Plain Bob " {
		t.Errorf("args = %q, want method %q", lines, "Plain Bob ")
	}
}

func TestStart_BotStdinIsEmpty(t *testing.T) {
	stdinFile := filepath.Join(t.TempDir(), "stdin")
	bot := writeBot(t, `cat > "`+stdinFile+`"`)

	if _, err := execute(t, "start", "--executable", bot); err != nil {
		t.Fatalf("start error = %v", err)
	}
	info, err := os.Stat(stdinFile)
	if err != nil {
		t.Fatalf("bot did not run: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("bot read %d bytes from stdin, want 0", info.Size())
	}
}
