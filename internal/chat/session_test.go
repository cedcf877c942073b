package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{Adapter: &fakeAdapter{}})
	if s.cfg.CtxSize != defaultCtxSize {
		t.Fatalf("expected default CtxSize=%d got %d", defaultCtxSize, s.cfg.CtxSize)
	}
	if s.cfg.MaxTokens != defaultMaxTokens {
		t.Fatalf("expected default MaxTokens=%d got %d", defaultMaxTokens, s.cfg.MaxTokens)
	}
	if s.cfg.Temperature != defaultTemperature || s.cfg.TopP != defaultTopP {
		t.Fatalf("unexpected sampling defaults: %+v", s.cfg)
	}
	if len(s.cfg.Stop) != 3 {
		t.Fatalf("expected 3 default stop sequences, got %v", s.cfg.Stop)
	}
}

func TestLoadIdempotent(t *testing.T) {
	ad := &fakeAdapter{engine: &fakeEngine{}}
	s := New(Config{Adapter: ad})
	if err := s.Load("/models/a.gguf"); err != nil {
		t.Fatalf("load: %v", err)
	}
	// Second load with a different path must keep the first handle.
	if err := s.Load("/models/b.gguf"); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := s.ModelPath(); got != "/models/a.gguf" {
		t.Fatalf("expected first model retained, got %q", got)
	}
	if ad.startCount() != 1 {
		t.Fatalf("expected exactly one engine start, got %d", ad.startCount())
	}
}

func TestLoadFailureInstallsNothing(t *testing.T) {
	ad := &fakeAdapter{startErr: errors.New("corrupt gguf")}
	s := New(Config{Adapter: ad})
	err := s.Load("/models/bad.gguf")
	if err == nil || !strings.Contains(err.Error(), "corrupt gguf") {
		t.Fatalf("expected wrapped engine error, got %v", err)
	}
	if s.Ready() {
		t.Fatalf("expected session not ready after failed load")
	}
	// A later load may still succeed.
	ad.startErr = nil
	ad.engine = &fakeEngine{}
	if err := s.Load("/models/good.gguf"); err != nil {
		t.Fatalf("retry load: %v", err)
	}
	if !s.Ready() {
		t.Fatalf("expected session ready after successful retry")
	}
}

func TestCloseIdempotent(t *testing.T) {
	eng := &fakeEngine{}
	s, _ := newTestSession(Config{}, eng)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if eng.closed != 1 {
		t.Fatalf("expected engine closed once, got %d", eng.closed)
	}
	if s.Ready() || s.ModelPath() != "" {
		t.Fatalf("expected session reset after close")
	}
}

func TestCloseThenRespondMatchesNeverLoaded(t *testing.T) {
	s, _ := newTestSession(Config{}, &fakeEngine{reply: "Neutral: hi."})
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reply, _ := s.Respond(context.Background(), "hello", nil)
	if reply != notInitializedReply {
		t.Fatalf("expected not-initialized sentinel, got %q", reply)
	}
}

func TestEngineUnavailableStub(t *testing.T) {
	if EngineBuilt() {
		t.Skip("built with the llama tag")
	}
	s := New(Config{})
	err := s.Load("/models/a.gguf")
	if err == nil {
		t.Fatalf("expected stub load to fail")
	}
	if !IsEngineUnavailable(errors.Unwrap(err)) {
		t.Fatalf("expected engine-unavailable error, got %v", err)
	}
}
