package chat

import (
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when corresponding Config fields are unset. The sampling
// defaults are the fixed generation parameters of the Primer reference setup.
const (
	defaultCtxSize     = 2048
	defaultMaxTokens   = 120
	defaultTemperature = 0.7
	defaultTopP        = 0.9
)

// defaultStop ends generation at a blank line or when the model starts
// speaking for another role.
var defaultStop = []string{"\n\n", "User:", "System:"}

// Config encapsulates all tunables for Session construction.
// Zero values mean "unspecified" and are replaced by package defaults.
type Config struct {
	CtxSize     int
	GPULayers   int
	Threads     int
	MaxTokens   int
	Temperature float64
	TopP        float64
	Stop        []string
	// Timeout bounds a single generation call. Zero disables the deadline and
	// a hung engine call blocks until the caller's context is canceled.
	Timeout time.Duration
	// Logger used for lifecycle and turn events. Nil disables logging.
	Logger *zerolog.Logger
	// Adapter overrides the engine runtime. Nil selects the built-in llama
	// adapter (or its no-CGO stub). Tests install fakes here.
	Adapter EngineAdapter
}

// withDefaults returns cfg with package defaults applied to unset fields.
func (cfg Config) withDefaults() Config {
	if cfg.CtxSize <= 0 {
		cfg.CtxSize = defaultCtxSize
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.TopP <= 0 {
		cfg.TopP = defaultTopP
	}
	if len(cfg.Stop) == 0 {
		cfg.Stop = append([]string(nil), defaultStop...)
	}
	if cfg.Adapter == nil {
		cfg.Adapter = NewLlamaAdapter()
	}
	return cfg
}
