package cli

import (
	"context"
	"strings"
	"testing"

	"primerchat/pkg/types"
)

// fakeResponder records prompts and appends turns like a real session.
type fakeResponder struct {
	reply   string
	prompts []string
}

func (f *fakeResponder) Respond(ctx context.Context, userPrompt string, history []types.Message) (string, []types.Message) {
	f.prompts = append(f.prompts, userPrompt)
	out := types.CopyHistory(history)
	out = append(out, types.User(userPrompt), types.Assistant(f.reply))
	return f.reply, out
}

func TestReplLoopEchoesReplies(t *testing.T) {
	in := strings.NewReader("hello\nwhat is gravity?\nquit\n")
	var out strings.Builder
	f := &fakeResponder{reply: "Neutral: test."}

	if err := replLoop(in, &out, f, nil); err != nil {
		t.Fatalf("repl: %v", err)
	}
	if len(f.prompts) != 2 {
		t.Fatalf("expected 2 turns, got %d: %v", len(f.prompts), f.prompts)
	}
	if strings.Count(out.String(), "AI: Neutral: test.") != 2 {
		t.Fatalf("missing replies in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "You: ") {
		t.Fatalf("missing prompt in output")
	}
}

func TestReplLoopQuitCaseInsensitive(t *testing.T) {
	for _, q := range []string{"quit", "QUIT", "Quit"} {
		in := strings.NewReader("hi\n" + q + "\nnever\n")
		var out strings.Builder
		f := &fakeResponder{reply: "Neutral: hi."}
		if err := replLoop(in, &out, f, nil); err != nil {
			t.Fatalf("repl(%q): %v", q, err)
		}
		if len(f.prompts) != 1 {
			t.Fatalf("%q did not stop the loop: %v", q, f.prompts)
		}
	}
}

func TestReplLoopSkipsBlankLinesAndStopsAtEOF(t *testing.T) {
	in := strings.NewReader("\n   \nhello\n")
	var out strings.Builder
	f := &fakeResponder{reply: "Neutral: hi."}
	if err := replLoop(in, &out, f, nil); err != nil {
		t.Fatalf("repl: %v", err)
	}
	if len(f.prompts) != 1 || f.prompts[0] != "hello" {
		t.Fatalf("unexpected prompts: %v", f.prompts)
	}
}

func TestReplLoopThreadsHistory(t *testing.T) {
	in := strings.NewReader("one\ntwo\nquit\n")
	var out strings.Builder
	f := &fakeResponder{reply: "Neutral: ok."}
	seed := []types.Message{types.System("S")}
	if err := replLoop(in, &out, f, seed); err != nil {
		t.Fatalf("repl: %v", err)
	}
	// Seed must be untouched; the loop threads the updated history itself.
	if len(seed) != 1 {
		t.Fatalf("seed mutated: %d messages", len(seed))
	}
}
