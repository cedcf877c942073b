package httpapi

import (
	"sync"
	"time"

	"primerchat/pkg/types"
)

// conversationStore holds per-session histories in memory. Nothing is
// persisted across process runs; a restart forgets every conversation.
type conversationStore struct {
	mu       sync.RWMutex
	sessions map[string]*conversation
}

type conversation struct {
	history  []types.Message
	lastUsed time.Time
}

func newConversationStore() *conversationStore {
	return &conversationStore{sessions: make(map[string]*conversation)}
}

// get returns a copy of the stored history so handlers never share backing
// arrays with the store.
func (s *conversationStore) get(id string) ([]types.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return types.CopyHistory(c.history), true
}

func (s *conversationStore) put(id string, history []types.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &conversation{history: types.CopyHistory(history), lastUsed: time.Now()}
}

// delete removes a conversation, reporting whether it existed.
func (s *conversationStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *conversationStore) snapshot() []types.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.SessionStatus, 0, len(s.sessions))
	for id, c := range s.sessions {
		out = append(out, types.SessionStatus{
			SessionID: id,
			Messages:  len(c.history),
			LastUsed:  c.lastUsed.Unix(),
		})
	}
	return out
}
