// Package cli wires the primerchat command tree: the interactive REPL at the
// root and the HTTP server under "serve".
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"primerchat/internal/chat"
	"primerchat/internal/config"
)

// options collects flag values layered over an optional config file.
type options struct {
	configPath  string
	addr        string
	ctxSize     int
	gpuLayers   int
	threads     int
	maxTokens   int
	temperature float64
	topP        float64
	timeoutSec  int
	verbose     bool
}

// Execute runs the primerchat CLI and returns a process exit code.
func Execute() int {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()
	root := buildRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// buildRootCmd constructs the Cobra command tree.
func buildRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "primerchat <model.gguf>",
		Short: "Primer, an AI teacher in the form of a book, on local llama.cpp",
		Long: `primerchat chats with a local llama.cpp model primed with the Primer
teaching persona. The root command runs an interactive loop on stdin;
"primerchat serve" exposes the same conversation contract over HTTP.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts, args[0])
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Optional config file (.yaml/.json/.toml)")
	pf.IntVar(&opts.ctxSize, "ctx", 0, "Context window size (default 2048)")
	pf.IntVar(&opts.gpuLayers, "gpu-layers", 0, "Number of layers to offload to GPU (0 = CPU only)")
	pf.IntVar(&opts.threads, "threads", 0, "Engine threads (0 = engine default)")
	pf.IntVar(&opts.maxTokens, "max-tokens", 0, "Maximum new tokens per reply (default 120)")
	pf.Float64Var(&opts.temperature, "temperature", 0, "Sampling temperature (default 0.7)")
	pf.Float64Var(&opts.topP, "top-p", 0, "Nucleus sampling probability (default 0.9)")
	pf.IntVar(&opts.timeoutSec, "timeout", 0, "Generation timeout in seconds (0 = no deadline)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")

	serve := &cobra.Command{
		Use:   "serve <model.gguf>",
		Short: "Serve the chat API over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, args[0])
		},
	}
	serve.Flags().StringVar(&opts.addr, "addr", defaultAddr(), "HTTP listen address, e.g. :8080")
	root.AddCommand(serve)
	return root
}

// defaultAddr reads PRIMERCHAT_ADDR with a :8080 fallback.
func defaultAddr() string {
	if v := os.Getenv("PRIMERCHAT_ADDR"); v != "" {
		return v
	}
	return ":8080"
}

// buildConfigs layers flag values over the optional config file. Zero flag
// values defer to the file; zero file values defer to chat package defaults.
func buildConfigs(opts *options) (chat.Config, config.Config, error) {
	var file config.Config
	if opts.configPath != "" {
		f, err := config.Load(opts.configPath)
		if err != nil {
			return chat.Config{}, config.Config{}, fmt.Errorf("load config: %w", err)
		}
		file = f
	}
	ccfg := chat.Config{
		CtxSize:     picki(opts.ctxSize, file.CtxSize),
		GPULayers:   picki(opts.gpuLayers, file.GPULayers),
		Threads:     picki(opts.threads, file.Threads),
		MaxTokens:   picki(opts.maxTokens, file.MaxTokens),
		Temperature: pickf(opts.temperature, file.Temperature),
		TopP:        pickf(opts.topP, file.TopP),
		Stop:        file.Stop,
		Timeout:     time.Duration(picki(opts.timeoutSec, file.TimeoutSeconds)) * time.Second,
	}
	return ccfg, file, nil
}

func picki(flag, file int) int {
	if flag != 0 {
		return flag
	}
	return file
}

func pickf(flag, file float64) float64 {
	if flag != 0 {
		return flag
	}
	return file
}

// newLogger builds the console logger used by both entry points.
func newLogger(verbose bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
