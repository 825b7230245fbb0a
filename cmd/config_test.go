package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/etnz/ledgible/renderer"
	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)
	got, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}
	want := &Config{Context: 3, Color: "auto", LogLevel: "warn", LogFormat: "text"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "ledgible.yaml", "context: 5\ncolor: never\nlog:\n  level: info\n", 0644)

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}
	want := &Config{Context: 5, Color: "never", LogLevel: "info", LogFormat: "text"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	isolate(t)
	path := writeFile(t, "ledgible.yaml", "context: 5\n", 0644)
	t.Setenv("LEDGIBLE_CONTEXT", "7")
	t.Setenv("LEDGIBLE_LOG_FORMAT", "json")

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}
	want := &Config{Context: 7, Color: "auto", LogLevel: "warn", LogFormat: "json"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		path string
	}{
		{"invalid color", writeFile(t, "color.yaml", "color: sometimes\n", 0644)},
		{"negative context", writeFile(t, "context.yaml", "context: -2\n", 0644)},
		{"missing file", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path); err == nil {
				t.Errorf("LoadConfig(%q) expected an error, got nil", tt.path)
			}
		})
	}
}

func TestSetupLogging(t *testing.T) {
	defer func() { _ = setupLogging("warn", "text") }()

	tests := []struct {
		level, format string
		wantErr       bool
		enabled       slog.Level // lowest enabled level
	}{
		{level: "debug", format: "json", enabled: slog.LevelDebug},
		{level: "INFO", format: "text", enabled: slog.LevelInfo},
		{level: "warn", format: "text", enabled: slog.LevelWarn},
		{level: "error+2", format: "text", enabled: slog.LevelError + 2},
		{level: "loud", format: "text", wantErr: true},
		{level: "warn", format: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			err := setupLogging(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("setupLogging(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			ctx := context.Background()
			if !slog.Default().Enabled(ctx, tt.enabled) {
				t.Errorf("level %v is disabled, want enabled", tt.enabled)
			}
			if slog.Default().Enabled(ctx, tt.enabled-1) {
				t.Errorf("level %v is enabled, want disabled", tt.enabled-1)
			}
		})
	}
}

func TestApplyColor(t *testing.T) {
	plain := renderer.Plain(&bytes.Buffer{})
	tests := []struct {
		color string
		want  bool
	}{
		{"auto", false},
		{"always", true},
		{"never", false},
	}
	for _, tt := range tests {
		if got := applyColor(plain, tt.color).SupportsColor(); got != tt.want {
			t.Errorf("applyColor(plain, %q).SupportsColor() = %v, want %v", tt.color, got, tt.want)
		}
	}
}
