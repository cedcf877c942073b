package chat

import (
	"strings"

	"primerchat/pkg/types"
)

// FormatPrompt renders history into the single text prompt the engine
// consumes. The transform is order-preserving and role-keyed:
//
//	system    -> "System: {content}\n\n"
//	user      -> "User: {content}\n"
//	assistant -> "Assistant: {content}\n\n"
//
// followed by the bare continuation cue "Assistant:". Messages with an
// unknown role are rejected rather than silently dropped.
func FormatPrompt(history []types.Message) (string, error) {
	var b strings.Builder
	for _, msg := range history {
		switch msg.Role {
		case types.RoleSystem:
			b.WriteString("System: ")
			b.WriteString(msg.Content)
			b.WriteString("\n\n")
		case types.RoleUser:
			b.WriteString("User: ")
			b.WriteString(msg.Content)
			b.WriteString("\n")
		case types.RoleAssistant:
			b.WriteString("Assistant: ")
			b.WriteString(msg.Content)
			b.WriteString("\n\n")
		default:
			return "", unknownRoleError{role: string(msg.Role)}
		}
	}
	b.WriteString("Assistant:")
	return b.String(), nil
}
