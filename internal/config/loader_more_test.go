package config

import (
	"testing"

	"flipd/internal/window"
)

func TestLoad_NonexistentFile(t *testing.T) {
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.yaml", "addr: :8080\n: broken\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected YAML unmarshal error")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.json", `{ "addr": ":8080", "items_dir": }`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected JSON unmarshal error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.toml", "addr=:8080\nitems_dir\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected TOML unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	bad := Config{WindowSize: 3, ActiveOffset: 3}
	if err := bad.Validate(); !window.IsInvalidConfig(err) {
		t.Fatalf("expected invalid window config, got %v", err)
	}
	fmtBad := Config{WindowSize: 3, LogFormat: "xml"}
	if err := fmtBad.Validate(); err == nil {
		t.Fatalf("expected log format error")
	}
}
