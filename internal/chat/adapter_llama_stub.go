//go:build !llama

package chat

// No-CGO stub compiled when the 'llama' build tag is NOT set, keeping default
// builds and CI CGO-free. Loading fails fast instead of mocking output; the
// real adapter lives in adapter_llama.go (tagged 'llama').

// llamaBuilt indicates this binary was compiled without real llama support.
var llamaBuilt = false

type llamaAdapter struct{}

// NewLlamaAdapter returns the stub adapter; Start always fails.
func NewLlamaAdapter() EngineAdapter { return llamaAdapter{} }

func (llamaAdapter) Start(modelPath string, opts EngineOptions) (EngineSession, error) {
	return nil, ErrEngineUnavailable("llama support not built (missing 'llama' build tag)")
}
