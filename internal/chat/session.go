package chat

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Session owns at most one loaded model handle and serializes turns against
// it. Unlike a process-wide singleton, the caller constructs it, loads a model
// into it, and closes it when done.
type Session struct {
	mu        sync.Mutex
	cfg       Config
	adapter   EngineAdapter
	engine    EngineSession
	modelPath string
	log       zerolog.Logger
}

// New constructs a Session with defaults applied. No model is loaded yet.
func New(cfg Config) *Session {
	cfg = cfg.withDefaults()
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Session{cfg: cfg, adapter: cfg.Adapter, log: logger}
}

// Load loads the model weights at modelPath into this session. Loading an
// already-loaded session is a no-op: the original handle stays installed even
// when modelPath differs. On failure no handle is installed and the engine
// error is returned.
func (s *Session) Load(modelPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.log.Info().Str("model", s.modelPath).Msg("model already loaded")
		return nil
	}
	s.log.Info().Str("model", modelPath).Msg("loading model")
	eng, err := s.adapter.Start(modelPath, EngineOptions{
		CtxSize:   s.cfg.CtxSize,
		GPULayers: s.cfg.GPULayers,
		Threads:   s.cfg.Threads,
	})
	if err != nil {
		s.log.Error().Err(err).Str("model", modelPath).Msg("model load failed")
		return fmt.Errorf("load model: %w", err)
	}
	s.engine = eng
	s.modelPath = modelPath
	loadsTotal.Inc()
	s.log.Info().Str("model", modelPath).Msg("model loaded")
	return nil
}

// Close releases the model handle. Safe to call when nothing is loaded, and
// safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return nil
	}
	err := s.engine.Close()
	s.engine = nil
	s.modelPath = ""
	s.log.Info().Msg("model released")
	return err
}

// Ready reports whether a model handle is loaded.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine != nil
}

// ModelPath returns the path of the loaded model, empty when unloaded.
func (s *Session) ModelPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelPath
}
