package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	return home
}

func TestExpandHome(t *testing.T) {
	home := setHome(t)
	// raw path unaffected
	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	p, err := ExpandHome("~")
	if err != nil || p != home {
		t.Fatalf("expected %q, got %q err=%v", home, p, err)
	}
	exp, err := ExpandHome("~/slides")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if filepath.Base(exp) != "slides" || filepath.Dir(exp) != home {
		t.Fatalf("unexpected expanded path: %q", exp)
	}
}

func TestIsDir(t *testing.T) {
	home := setHome(t)
	if !IsDir(home) || !IsDir("~") {
		t.Fatalf("home must be a dir")
	}
	f := filepath.Join(home, "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if IsDir(f) {
		t.Fatalf("regular file is not a dir")
	}
	if IsDir(filepath.Join(home, "missing")) {
		t.Fatalf("missing path is not a dir")
	}
}
