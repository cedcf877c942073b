package chat

import (
	"context"
	"sync"
)

// fakeAdapter satisfies EngineAdapter for tests.
type fakeAdapter struct {
	startErr error
	engine   *fakeEngine

	mu     sync.Mutex
	starts []string
}

func (a *fakeAdapter) Start(modelPath string, opts EngineOptions) (EngineSession, error) {
	a.mu.Lock()
	a.starts = append(a.starts, modelPath)
	a.mu.Unlock()
	if a.startErr != nil {
		return nil, a.startErr
	}
	if a.engine == nil {
		a.engine = &fakeEngine{}
	}
	return a.engine, nil
}

func (a *fakeAdapter) startCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.starts)
}

// fakeEngine returns a canned reply, an error, or blocks until ctx is done.
type fakeEngine struct {
	reply      string
	err        error
	block      bool
	lastPrompt string
	lastParams GenParams
	closed     int
}

func (e *fakeEngine) Generate(ctx context.Context, prompt string, params GenParams) (string, error) {
	e.lastPrompt = prompt
	e.lastParams = params
	if e.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if e.err != nil {
		return "", e.err
	}
	return e.reply, nil
}

func (e *fakeEngine) Close() error {
	e.closed++
	return nil
}

// newTestSession builds a loaded session backed by the given fake engine.
func newTestSession(cfg Config, eng *fakeEngine) (*Session, *fakeAdapter) {
	ad := &fakeAdapter{engine: eng}
	cfg.Adapter = ad
	s := New(cfg)
	if err := s.Load("/models/test.gguf"); err != nil {
		panic("test session load: " + err.Error())
	}
	return s, ad
}
