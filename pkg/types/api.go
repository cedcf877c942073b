package types

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	// Optional conversation id. When empty or unknown, a new conversation is
	// seeded from the persona and a fresh id is minted.
	// example: 4f6c8e0a-6c1a-4d3e-9f2b-0a1b2c3d4e5f
	SessionID string `json:"session_id,omitempty" example:"4f6c8e0a-6c1a-4d3e-9f2b-0a1b2c3d4e5f"`
	// Required user message.
	// example: What is gravity?
	Message string `json:"message" example:"What is gravity?"`
}

// ChatResponse is returned by POST /chat.
type ChatResponse struct {
	// Conversation id to pass back on the next turn.
	// example: 4f6c8e0a-6c1a-4d3e-9f2b-0a1b2c3d4e5f
	SessionID string `json:"session_id" example:"4f6c8e0a-6c1a-4d3e-9f2b-0a1b2c3d4e5f"`
	// Full reply text, including the leading mood tag when the model emitted one.
	// example: Neutral: Gravity is the attraction between masses.
	Reply string `json:"reply" example:"Neutral: Gravity is the attraction between masses."`
	// Mood tag parsed from the reply, empty when the model omitted it.
	// example: Neutral
	Mood string `json:"mood,omitempty" example:"Neutral"`
	// Number of messages in the stored conversation after this turn.
	// example: 15
	HistoryLen int `json:"history_len" example:"15"`
}

// SessionStatus summarizes one stored conversation for GET /status.
type SessionStatus struct {
	// Conversation id.
	// example: 4f6c8e0a-6c1a-4d3e-9f2b-0a1b2c3d4e5f
	SessionID string `json:"session_id" example:"4f6c8e0a-6c1a-4d3e-9f2b-0a1b2c3d4e5f"`
	// Number of messages held for this conversation.
	// example: 15
	Messages int `json:"messages" example:"15"`
	// Last time this conversation served a turn (unix seconds).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix" example:"1700000000"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Whether a model handle is loaded and ready to generate.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// Absolute path of the loaded model file, empty when unloaded.
	// example: /home/user/models/TinyLlama.Q4_K_M.gguf
	ModelPath string `json:"model_path,omitempty" example:"/home/user/models/TinyLlama.Q4_K_M.gguf"`
	// Stored conversations.
	Sessions []SessionStatus `json:"sessions"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
