package httpapi

import (
	"testing"

	"primerchat/pkg/types"
)

func TestStoreGetReturnsCopy(t *testing.T) {
	s := newConversationStore()
	s.put("a", []types.Message{types.User("hi")})

	h, ok := s.get("a")
	if !ok || len(h) != 1 {
		t.Fatalf("get: ok=%v len=%d", ok, len(h))
	}
	h[0] = types.User("mutated")
	h2, _ := s.get("a")
	if h2[0].Content != "hi" {
		t.Fatalf("store mutated via returned slice")
	}
}

func TestStoreGetUnknown(t *testing.T) {
	s := newConversationStore()
	if _, ok := s.get("missing"); ok {
		t.Fatalf("expected miss")
	}
}

func TestStoreDelete(t *testing.T) {
	s := newConversationStore()
	s.put("a", nil)
	if !s.delete("a") {
		t.Fatalf("expected delete to report existing session")
	}
	if s.delete("a") {
		t.Fatalf("expected second delete to miss")
	}
}

func TestStoreSnapshot(t *testing.T) {
	s := newConversationStore()
	s.put("a", []types.Message{types.User("1"), types.Assistant("2")})
	s.put("b", []types.Message{types.User("1")})
	snap := s.snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(snap))
	}
	for _, st := range snap {
		if st.LastUsed == 0 {
			t.Fatalf("expected last_used set: %+v", st)
		}
	}
}
