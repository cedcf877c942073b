package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"primerchat/internal/chat"
	"primerchat/internal/modelfile"
	"primerchat/internal/persona"
	"primerchat/pkg/types"
)

// responder is the slice of chat.Session the loop needs.
type responder interface {
	Respond(ctx context.Context, userPrompt string, history []types.Message) (string, []types.Message)
}

// runREPL loads the model, seeds the persona history, and feeds stdin lines
// to the session until EOF or "quit".
func runREPL(cmd *cobra.Command, opts *options, modelArg string) error {
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
	// Load failure is fatal: the session would answer every turn with a
	// sentinel, so exit instead of starting the loop.
	if err := sess.Load(path); err != nil {
		return err
	}
	defer sess.Close()

	return replLoop(cmd.InOrStdin(), cmd.OutOrStdout(), sess, persona.SeedHistory())
}

// replLoop reads user lines until EOF or "quit" (case-insensitive), printing
// each reply prefixed "AI: ". Blank lines are skipped.
func replLoop(in io.Reader, out io.Writer, r responder, history []types.Message) error {
	fmt.Fprintln(out, "I am Primer, your AI teacher. Type 'quit' to exit.")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") {
			break
		}
		var reply string
		reply, history = r.Respond(context.Background(), line, history)
		fmt.Fprintf(out, "AI: %s\n", reply)
	}
	return sc.Err()
}
