package chat

import "context"

// EngineAdapter abstracts the inference engine used by a Session. The concrete
// implementation is go-llama.cpp; tests install fakes.
type EngineAdapter interface {
	// Start loads the model weights at modelPath and returns a live engine
	// session, or an error when the weights cannot be loaded.
	Start(modelPath string, opts EngineOptions) (EngineSession, error)
}

// EngineSession is a loaded model ready to generate text.
type EngineSession interface {
	// Generate produces a completion for prompt. Implementations must return
	// promptly when ctx is canceled and must not echo the prompt back.
	Generate(ctx context.Context, prompt string, params GenParams) (string, error)
	// Close releases the model weights.
	Close() error
}

// EngineOptions captures load-time engine configuration.
type EngineOptions struct {
	CtxSize   int
	GPULayers int
	Threads   int
}

// GenParams captures per-call sampling parameters.
type GenParams struct {
	MaxTokens   int
	Temperature float32
	TopP        float32
	Stop        []string
}

// EngineBuilt reports whether this binary was compiled with the real llama
// runtime ('llama' build tag). Without it, Start fails fast instead of
// producing mocked output.
func EngineBuilt() bool { return llamaBuilt }
