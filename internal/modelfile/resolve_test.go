package modelfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRegularFile(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "tiny.gguf")
	if err := os.WriteFile(p, []byte("gguf"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Resolve(p)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %q", got)
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := Resolve(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	if _, err := Resolve("   "); err == nil {
		t.Fatalf("expected error on blank path")
	}
	if _, err := Resolve("/nonexistent/model.gguf"); err == nil {
		t.Fatalf("expected error on missing file")
	}
	d := t.TempDir()
	if _, err := Resolve(d); err == nil {
		t.Fatalf("expected error on directory")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := expandHome("~/models/tiny.gguf")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "models", "tiny.gguf") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	got, err = expandHome("~")
	if err != nil || got != home {
		t.Fatalf("expected bare '~' to expand to home, got %q err=%v", got, err)
	}
	got, err = expandHome("/plain/path")
	if err != nil || got != "/plain/path" {
		t.Fatalf("expected plain path unchanged, got %q err=%v", got, err)
	}
}
