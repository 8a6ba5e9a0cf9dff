package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rviscarra/termscreen/internal/encoders"
)

var envKeys = []string{
	"TERMSCREEN_MONITOR",
	"TERMSCREEN_INTERVAL",
	"TERMSCREEN_COLOR",
	"TERMSCREEN_LOGLEVEL",
	"TERMSCREEN_LOGFILE",
}

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Monitor != 1 {
		t.Fatalf("Monitor = %d, want 1", cfg.Monitor)
	}
	if cfg.Interval != time.Second {
		t.Fatalf("Interval = %v, want 1s", cfg.Interval)
	}
	if cfg.Color != ColorAuto || cfg.BannerDelay != 2*time.Second || cfg.LogLevel != "WARNING" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMSCREEN_MONITOR", "3")
	t.Setenv("TERMSCREEN_INTERVAL", "0.5")
	t.Setenv("TERMSCREEN_COLOR", "256")

	cfg, err := Load("", nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Monitor != 3 || cfg.Interval != 500*time.Millisecond || cfg.Color != "256" {
		t.Fatalf("env not applied: %+v", cfg)
	}

	cfg, err = Load("", []string{"-m", "2", "-interval", "0.25", "-color", "truecolor", "-banner", "0s"}, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Monitor != 2 || cfg.Interval != 250*time.Millisecond || cfg.Color != "truecolor" || cfg.BannerDelay != 0 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TERMSCREEN_MONITOR=0\nTERMSCREEN_LOGLEVEL=DEBUG\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := Load(path, nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Monitor != 0 || cfg.LogLevel != "DEBUG" {
		t.Fatalf("env file not applied: %+v", cfg)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil, io.Discard); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "zero interval", args: []string{"-i", "0"}},
		{name: "negative interval", args: []string{"-i", "-1"}},
		{name: "bad color", args: []string{"-color", "sixel"}},
		{name: "negative banner", args: []string{"-banner", "-1s"}},
		{name: "extra args", args: []string{"extra"}},
		{name: "bad env monitor", env: map[string]string{"TERMSCREEN_MONITOR": "two"}},
		{name: "bad env interval", env: map[string]string{"TERMSCREEN_INTERVAL": "fast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", tt.args, io.Discard)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.HasPrefix(err.Error(), "config:") {
				t.Fatalf("error %q lacks config prefix", err)
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	clearEnv(t)
	var out strings.Builder
	_, err := Load("", []string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "-monitor") {
		t.Fatalf("usage missing flags: %q", out.String())
	}
}

func TestColorMode(t *testing.T) {
	detect := func() encoders.ColorMode { return encoders.ANSI256 }
	tests := []struct {
		color string
		want  encoders.ColorMode
	}{
		{"auto", encoders.ANSI256},
		{"AUTO", encoders.ANSI256},
		{"truecolor", encoders.TrueColor},
		{"256", encoders.ANSI256},
	}
	for _, tt := range tests {
		got, err := Config{Color: tt.color}.ColorMode(detect)
		if err != nil || got != tt.want {
			t.Fatalf("ColorMode(%q) = %v, %v; want %v", tt.color, got, err, tt.want)
		}
	}
}
