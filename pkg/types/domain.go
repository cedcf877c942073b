package types

// Role identifies the speaker of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the three known conversation roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message is a single conversation turn. Messages are value types and are
// never mutated after creation.
type Message struct {
	// Speaker role: system, user, or assistant.
	// example: user
	Role Role `json:"role" example:"user"`
	// Message text.
	// example: What is gravity?
	Content string `json:"content" example:"What is gravity?"`
}

// System builds a system message.
func System(content string) Message { return Message{Role: RoleSystem, Content: content} }

// User builds a user message.
func User(content string) Message { return Message{Role: RoleUser, Content: content} }

// Assistant builds an assistant message.
func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }

// CopyHistory returns a fresh slice with the same messages. Callers use it to
// hand out histories without sharing backing arrays.
func CopyHistory(h []Message) []Message {
	out := make([]Message, len(h))
	copy(out, h)
	return out
}
