package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"primerchat/internal/chat"
	"primerchat/internal/httpapi"
	"primerchat/internal/modelfile"
)

// runServe loads the model and serves the chat API until SIGINT/SIGTERM.
func runServe(cmd *cobra.Command, opts *options, modelArg string) error {
	ccfg, fcfg, err := buildConfigs(opts)
	if err != nil {
		return err
	}
	logger := newLogger(opts.verbose || fcfg.Verbose)
	ccfg.Logger = &logger

	path, err := modelfile.Resolve(modelArg)
	if err != nil {
		return err
	}
	if !chat.EngineBuilt() {
		logger.Warn().Msg("built without the 'llama' tag; model load will fail")
	}
	sess := chat.New(ccfg)
	if err := sess.Load(path); err != nil {
		return err
	}
	defer sess.Close()

	addr := opts.addr
	if !cmd.Flags().Changed("addr") && fcfg.Addr != "" {
		addr = fcfg.Addr
	}

	httpapi.SetLogger(logger)
	baseCtx, stopBase := context.WithCancel(context.Background())
	defer stopBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: addr, Handler: httpapi.NewMux(sess)}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("model", path).Msg("primerchat listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	stopBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
