// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gitscope-cli/internal/issue"
	"gitscope-cli/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputFormat != "text" {
		t.Errorf("expected default output format to be text, got %s", cfg.OutputFormat)
	}
	if cfg.DefaultGitDir != ".git" {
		t.Errorf("expected default git dir to be .git, got %s", cfg.DefaultGitDir)
	}
	if cfg.UI.ColorScheme != "auto" {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
}

func TestConfigDir(t *testing.T) {
	cleanup := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	defer cleanup()
	defer Reset()

	if runtime.GOOS == "linux" {
		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() returned error: %v", err)
		}
		want := filepath.Join("/tmp/test-xdg-config", AppName)
		if dir != want {
			t.Errorf("ConfigDir() = %q, want %q", dir, want)
		}
	}

	// Override always wins, regardless of platform.
	SetConfigDirOverride("/custom/dir")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() with override returned error: %v", err)
	}
	if dir != "/custom/dir" {
		t.Errorf("ConfigDir() = %q, want /custom/dir", dir)
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty when no file exists", path)
	}
	if cfg.OutputFormat != "text" || cfg.UI.ColorScheme != "auto" {
		t.Errorf("Load() without file should return defaults, got %+v", cfg)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	content := "output_format = \"json\"\ndefault_git_dir = \"/repo/.git\"\n\n[ui]\ncolor_scheme = \"light\"\nverbose = true\n"
	testutil.MustWriteFile(t, filepath.Join(dir, "config.toml"), []byte(content), 0o644)

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if path != filepath.Join(dir, "config.toml") {
		t.Errorf("resolved path = %q, want %q", path, filepath.Join(dir, "config.toml"))
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("output_format = %q, want json", cfg.OutputFormat)
	}
	if cfg.DefaultGitDir != "/repo/.git" {
		t.Errorf("default_git_dir = %q, want /repo/.git", cfg.DefaultGitDir)
	}
	if cfg.UI.ColorScheme != "light" || !cfg.UI.Verbose {
		t.Errorf("ui section not applied: %+v", cfg.UI)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	testutil.MustWriteFile(t, filepath.Join(dir, "config.toml"), []byte("output_format = \"json\"\n"), 0o644)

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("output_format = %q, want json", cfg.OutputFormat)
	}
	if cfg.UI.ColorScheme != "auto" {
		t.Errorf("unset keys should keep defaults, color_scheme = %q", cfg.UI.ColorScheme)
	}
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	testutil.MustWriteFile(t, filepath.Join(dir, "config.toml"), []byte("output_format = \"xml\"\n"), 0o644)

	_, _, err := Load()
	if err == nil {
		t.Fatal("Load() should reject unknown output_format")
	}
	var actionable *issue.ActionableError
	if !errors.As(err, &actionable) {
		t.Errorf("validation error should be actionable, got %T", err)
	}
	if !strings.Contains(err.Error(), "output_format") {
		t.Errorf("error should name the offending key, got: %v", err)
	}
}

func TestLoad_ExplicitFileOverride(t *testing.T) {
	defer Reset()

	t.Run("missing file fails", func(t *testing.T) {
		SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))
		defer Reset()

		_, _, err := Load()
		if err == nil {
			t.Fatal("Load() should fail for a missing explicit config file")
		}
	})

	t.Run("existing file used exclusively", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		testutil.MustWriteFile(t, path, []byte("output_format = \"json\"\n"), 0o644)
		SetConfigFilePathOverride(path)
		defer Reset()

		cfg, resolved, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if resolved != path {
			t.Errorf("resolved path = %q, want %q", resolved, path)
		}
		if cfg.OutputFormat != "json" {
			t.Errorf("output_format = %q, want json", cfg.OutputFormat)
		}
	})
}

func TestCreateDefault(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	if err := CreateDefault(); err != nil {
		t.Fatalf("CreateDefault() returned error: %v", err)
	}

	cfgPath := filepath.Join(dir, "config.toml")
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("default config file not written: %v", err)
	}
	if !strings.Contains(string(data), "output_format") {
		t.Errorf("default config should contain output_format, got:\n%s", data)
	}

	// Idempotent: a second call must not clobber user edits.
	testutil.MustWriteFile(t, cfgPath, []byte("output_format = \"json\"\n"), 0o644)
	if err := CreateDefault(); err != nil {
		t.Fatalf("second CreateDefault() returned error: %v", err)
	}
	data, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("failed to re-read config: %v", err)
	}
	if !strings.Contains(string(data), "json") {
		t.Error("CreateDefault() overwrote an existing config file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	in := DefaultConfig()
	in.OutputFormat = "json"
	in.UI.Verbose = true

	if err := Save(in); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	out, _, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() returned error: %v", err)
	}
	if out.OutputFormat != "json" || !out.UI.Verbose {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
