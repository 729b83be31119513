package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tessro/ringer/internal/paths"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("LoadFromPath() = %+v, want nil", cfg)
	}

	cfg, err = LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil || cfg != nil {
		t.Errorf("missing yaml: cfg = %+v, err = %v", cfg, err)
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
executable = "/opt/bot/bin/wheatley"
log_level = "debug"
watch = true

[defaults]
tower_id = "1234"
stage = 8
method = "Cambridge Surprise"
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.GetExecutable() != "/opt/bot/bin/wheatley" {
		t.Errorf("GetExecutable() = %q", cfg.GetExecutable())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("GetLogLevel() = %q", cfg.GetLogLevel())
	}
	if !cfg.WatchEnabled() {
		t.Error("WatchEnabled() = false, want true")
	}
	if cfg.GetTowerID() != "1234" || cfg.GetStage() != 8 || cfg.GetMethod() != "Cambridge Surprise" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
}

func TestLoadFromPath_YAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config"+ext)
			writeFile(t, path, `
executable: /usr/local/bin/wheatley
defaults:
  tower_id: "987654321"
  stage: 10
  method: Grandsire
`)
			cfg, err := LoadFromPath(path)
			if err != nil {
				t.Fatalf("LoadFromPath() error = %v", err)
			}
			if cfg.GetExecutable() != "/usr/local/bin/wheatley" {
				t.Errorf("GetExecutable() = %q", cfg.GetExecutable())
			}
			if cfg.GetTowerID() != "987654321" || cfg.GetStage() != 10 || cfg.GetMethod() != "Grandsire" {
				t.Errorf("defaults = %+v", cfg.Defaults)
			}
		})
	}
}

func TestLoadFromPath_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "executable = \n")

	if _, err := LoadFromPath(path); err == nil {
		t.Error("LoadFromPath() error = nil, want parse error")
	}
}

func TestLoad_UsesRingerDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvRingerDir, dir)

	if err := os.MkdirAll(filepath.Join(dir, "config"), 0700); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "config", "config.toml"), `executable = "bot"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GetExecutable() != "bot" {
		t.Errorf("GetExecutable() = %q, want bot", cfg.GetExecutable())
	}
}

func TestGetters_Defaults(t *testing.T) {
	t.Setenv(paths.EnvRingerDir, "/tmp/ringer-cfg-test")

	tests := []struct {
		name   string
		config *Config
	}{
		{"nil config", nil},
		{"empty config", &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.config
			if got := c.GetExecutable(); got != DefaultExecutable {
				t.Errorf("GetExecutable() = %q", got)
			}
			if got := c.GetLogLevel(); got != DefaultLogLevel {
				t.Errorf("GetLogLevel() = %q", got)
			}
			if got := c.GetBotLog(); got != "/tmp/ringer-cfg-test/bot.log" {
				t.Errorf("GetBotLog() = %q", got)
			}
			if got := c.GetTowerID(); got != DefaultTowerID {
				t.Errorf("GetTowerID() = %q", got)
			}
			if got := c.GetStage(); got != DefaultStage {
				t.Errorf("GetStage() = %d", got)
			}
			if got := c.GetMethod(); got != DefaultMethod {
				t.Errorf("GetMethod() = %q", got)
			}
			if c.WatchEnabled() {
				t.Error("WatchEnabled() = true")
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(paths.EnvRingerDir, "/tmp/ringer-cfg-test")

	got, err := Path("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/ringer-cfg-test/config/config.toml" {
		t.Errorf("Path(\"\") = %q", got)
	}
	if got, _ := Path("/etc/ringer.yaml"); got != "/etc/ringer.yaml" {
		t.Errorf("Path(override) = %q", got)
	}
}

func TestResolvedWriteTOML(t *testing.T) {
	cfg := &Config{Executable: "/bin/bot", Defaults: DefaultsConfig{Stage: 12}}
	resolved := cfg.Resolved()

	var buf bytes.Buffer
	if err := resolved.WriteTOML(&buf); err != nil {
		t.Fatalf("WriteTOML() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`executable = "/bin/bot"`, "stage = 12", `method = "Plain Bob"`, "[defaults]"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteTOML() output missing %q:\n%s", want, out)
		}
	}

	path := filepath.Join(t.TempDir(), "roundtrip.toml")
	writeFile(t, path, out)
	back, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload written TOML: %v", err)
	}
	if back.Defaults != resolved.Defaults || back.Executable != resolved.Executable {
		t.Errorf("reloaded = %+v, want %+v", *back, resolved)
	}
}
