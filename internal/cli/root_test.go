package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRootRequiresModelArg(t *testing.T) {
	root := buildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error when model path is missing")
	}
	if !strings.Contains(out.String(), "Usage") {
		t.Fatalf("expected usage output, got:\n%s", out.String())
	}
}

func TestServeRequiresModelArg(t *testing.T) {
	root := buildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"serve"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error when model path is missing")
	}
}

func TestBuildConfigsFlagOverridesFile(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "cfg.yaml")
	if err := os.WriteFile(p, []byte("ctx_size: 4096\nmax_tokens: 64\ntimeout_seconds: 7\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	opts := &options{configPath: p, ctxSize: 1024}
	ccfg, fcfg, err := buildConfigs(opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ccfg.CtxSize != 1024 {
		t.Fatalf("flag should win: ctx=%d", ccfg.CtxSize)
	}
	if ccfg.MaxTokens != 64 {
		t.Fatalf("file value should apply: max_tokens=%d", ccfg.MaxTokens)
	}
	if ccfg.Timeout != 7*time.Second {
		t.Fatalf("timeout: %v", ccfg.Timeout)
	}
	if fcfg.CtxSize != 4096 {
		t.Fatalf("file config lost: %+v", fcfg)
	}
}

func TestBuildConfigsBadFile(t *testing.T) {
	opts := &options{configPath: "/nonexistent/cfg.yaml"}
	if _, _, err := buildConfigs(opts); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestDefaultAddrEnv(t *testing.T) {
	t.Setenv("PRIMERCHAT_ADDR", ":9191")
	if got := defaultAddr(); got != ":9191" {
		t.Fatalf("expected env addr, got %q", got)
	}
}
