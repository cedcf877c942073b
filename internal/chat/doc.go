// Package chat implements the conversation session around a local llama.cpp
// model: prompt formatting, the respond contract, and the engine lifecycle.
// It is structured into small files by concern:
//
//   - session.go: Session type, constructor, Load/Close/Ready lifecycle.
//   - config.go: Config and package defaults; New applies defaults.
//   - prompt.go: role-keyed history-to-prompt transform.
//   - respond.go: one conversation turn, sentinel replies on failure.
//   - errors.go: error types and helpers (IsNotInitialized, IsEngineUnavailable).
//   - metrics.go: Prometheus counters and histograms.
//   - adapter_iface.go: EngineAdapter/EngineSession abstraction.
//
// Engine runtimes:
//
//   - In-process llama (standard): go-llama.cpp adapter, enabled with
//     `-tags=llama` (adapter_llama.go, llama_cgo.go). A no-CGO stub compiles
//     when the tag is not set: adapter_llama_stub.go.
//
// External packages should treat a Session as the owner of the model handle
// and use public methods only (New, Load, Respond, Ready, Close).
package chat
