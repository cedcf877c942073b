//go:build llama

package chat

import (
	"context"
	"errors"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = true

type llamaAdapter struct{}

// NewLlamaAdapter returns the in-process go-llama.cpp adapter.
func NewLlamaAdapter() EngineAdapter { return llamaAdapter{} }

// llamaEngine owns the loaded model.
type llamaEngine struct {
	model   *llama.LLama
	threads int
}

func (llamaAdapter) Start(modelPath string, opts EngineOptions) (EngineSession, error) {
	if strings.TrimSpace(modelPath) == "" {
		return nil, errors.New("model path is empty")
	}
	mo := []llama.ModelOption{
		llama.SetContext(zn(opts.CtxSize, defaultCtxSize)),
		llama.SetGPULayers(opts.GPULayers),
	}
	m, err := llama.New(modelPath, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaEngine{model: m, threads: opts.Threads}, nil
}

func (e *llamaEngine) Generate(ctx context.Context, prompt string, params GenParams) (string, error) {
	if e.model == nil {
		return "", errors.New("llama model not initialized")
	}
	// Stop generation promptly when the context is canceled.
	e.model.SetTokenCallback(func(string) bool {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	})
	// Predict does not echo the prompt; only generated tokens are returned.
	po := []llama.PredictOption{
		llama.SetTokens(zn(params.MaxTokens, defaultMaxTokens)),
		llama.SetThreads(zn(e.threads, 1)),
		llama.SetTemperature(zf(params.Temperature, llama.DefaultOptions.Temperature)),
		llama.SetTopP(zf(params.TopP, llama.DefaultOptions.TopP)),
	}
	if len(params.Stop) > 0 {
		po = append(po, llama.SetStopWords(params.Stop...))
	}
	text, err := e.model.Predict(prompt, po...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	return text, nil
}

func (e *llamaEngine) Close() error {
	if e.model != nil {
		e.model.Free()
		e.model = nil
	}
	return nil
}

// helpers
func zn(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
func zf(v, def float32) float32 {
	if v > 0 {
		return v
	}
	return def
}
