package chat

// notInitializedError signals that a turn was attempted before Load.
type notInitializedError struct{}

func (notInitializedError) Error() string { return "model not initialized" }

// IsNotInitialized reports whether err indicates a missing model handle.
func IsNotInitialized(err error) bool {
	_, ok := err.(notInitializedError)
	return ok
}

// unknownRoleError rejects history entries whose role is not one of the three
// known conversation roles.
type unknownRoleError struct{ role string }

func (e unknownRoleError) Error() string { return "unknown role: " + e.role }

// IsUnknownRole reports whether err indicates an unrecognized message role.
func IsUnknownRole(err error) bool {
	_, ok := err.(unknownRoleError)
	return ok
}

// engineUnavailableError signals a missing engine runtime (e.g., a binary
// built without the 'llama' build tag).
type engineUnavailableError struct{ msg string }

func (e engineUnavailableError) Error() string { return e.msg }

// ErrEngineUnavailable constructs an engineUnavailableError.
func ErrEngineUnavailable(msg string) error { return engineUnavailableError{msg: msg} }

// IsEngineUnavailable reports whether err indicates a missing/failed engine runtime.
func IsEngineUnavailable(err error) bool {
	_, ok := err.(engineUnavailableError)
	return ok
}
