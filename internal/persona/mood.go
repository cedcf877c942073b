package persona

import "strings"

// Moods lists the six tags the system prompt instructs the model to open with.
var Moods = []string{"Neutral", "Laughing", "Confused", "Celebratory", "Sad", "Sleeping"}

// SplitMood splits a reply into its leading mood tag and the remainder.
// ok is false when the reply does not open with a known tag, in which case
// rest is the reply unchanged.
func SplitMood(reply string) (mood, rest string, ok bool) {
	for _, m := range Moods {
		if strings.HasPrefix(reply, m+":") {
			return m, strings.TrimSpace(strings.TrimPrefix(reply, m+":")), true
		}
	}
	return "", reply, false
}

// EnsureMood prefixes "Neutral: " when reply carries no recognized tag.
// The generation path never calls this: the tag is policy for the model, not
// a wire contract. It exists for callers that want a repaired reply.
func EnsureMood(reply string) string {
	if _, _, ok := SplitMood(reply); ok {
		return reply
	}
	return "Neutral: " + reply
}
