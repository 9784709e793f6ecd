package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingDefaultUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOT_LOG_LEVEL", "")
	t.Setenv("JOT_MERGE_WINDOW_MS", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Defaults() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for explicit missing config")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("JOT_LOG_LEVEL", "")
	t.Setenv("JOT_MERGE_WINDOW_MS", "")
	path := writeConfig(t, `
[editor]
tab_width = 8
save_on_quit = false

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("tab_width = %d", cfg.Editor.TabWidth)
	}
	if cfg.Editor.SaveOnQuit {
		t.Error("save_on_quit not overridden")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Editor.MergeWindowMS != 500 || !cfg.Editor.RememberCursor {
		t.Errorf("defaults lost: %+v", cfg.Editor)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeConfig(t, "[editor\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Fatalf("err = %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JOT_LOG_LEVEL", "warn")
	t.Setenv("JOT_MERGE_WINDOW_MS", "250")
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
	if got := cfg.Editor.MergeWindow(); got != 250*time.Millisecond {
		t.Errorf("merge window = %v", got)
	}
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv("JOT_LOG_LEVEL", "")
	t.Setenv("JOT_MERGE_WINDOW_MS", "soon")
	if _, err := Load(writeConfig(t, "")); err == nil {
		t.Fatal("expected error for non-numeric merge window")
	}
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level string
		ok    bool
	}{
		{"", true},
		{"debug", true},
		{" WARN ", true},
		{"loud", false},
	}
	for _, tt := range tests {
		cfg := Defaults()
		cfg.Log.Level = tt.level
		if err := cfg.Validate(); (err == nil) != tt.ok {
			t.Errorf("Validate with level %q: err = %v, want ok=%v", tt.level, err, tt.ok)
		}
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Editor.TabWidth = 0
	cfg.Editor.MergeWindowMS = -1
	cfg.Editor.WordDelimiters = ""
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"tab_width", "merge_window_ms", "word_delimiters", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestMergeWindow(t *testing.T) {
	tests := []struct {
		ms   int
		want time.Duration
	}{
		{500, 500 * time.Millisecond},
		{1, time.Millisecond},
		{0, -1},
	}
	for _, tt := range tests {
		if got := (EditorConfig{MergeWindowMS: tt.ms}).MergeWindow(); got != tt.want {
			t.Errorf("MergeWindow(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}
