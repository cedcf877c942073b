package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"primerchat/pkg/types"
)

// Sentinel replies reuse the persona's "Confused" mood so a failed turn still
// reads as chat content rather than a raised error.
const (
	notInitializedReply = "Confused: Model not initialized. Please load a model first."
	generateErrorPrefix = "Confused: Error generating response: "
)

// Respond runs one conversation turn: it appends userPrompt to a working copy
// of history, formats the copy into a prompt, invokes the engine with the
// session's sampling parameters, and returns the trimmed reply together with
// the working copy extended by the assistant message.
//
// The caller's history slice is never mutated. Failures never surface as
// errors: when no model is loaded, or when generation fails, Respond returns
// a sentinel reply and the original history unchanged, and the working copy
// built for the turn is discarded. The caller continues the conversation
// normally on the next turn.
func (s *Session) Respond(ctx context.Context, userPrompt string, history []types.Message) (string, []types.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		sentinelsTotal.WithLabelValues("not_initialized").Inc()
		s.log.Warn().Msg("respond called before model load")
		return notInitializedReply, history
	}

	working := make([]types.Message, 0, len(history)+2)
	working = append(working, history...)
	working = append(working, types.User(userPrompt))

	prompt, err := FormatPrompt(working)
	if err != nil {
		return s.failTurn("format", err, history)
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.engine.Generate(ctx, prompt, GenParams{
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: float32(s.cfg.Temperature),
		TopP:        float32(s.cfg.TopP),
		Stop:        s.cfg.Stop,
	})
	generationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return s.failTurn("timeout", errors.New("generation timed out after "+s.cfg.Timeout.String()), history)
		}
		return s.failTurn("engine", err, history)
	}

	reply := strings.TrimSpace(text)
	working = append(working, types.Assistant(reply))
	generationsTotal.Inc()
	s.log.Debug().Dur("dur", time.Since(start)).Int("history_len", len(working)).Msg("turn completed")
	return reply, working
}

// failTurn converts err into the recoverable sentinel reply, handing back the
// caller's history untouched.
func (s *Session) failTurn(reason string, err error, history []types.Message) (string, []types.Message) {
	sentinelsTotal.WithLabelValues(reason).Inc()
	s.log.Error().Err(err).Str("reason", reason).Msg("generation failed")
	return generateErrorPrefix + err.Error(), history
}
