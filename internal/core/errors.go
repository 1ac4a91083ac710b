package core

// Error codes for domain errors.
const (
	ErrCodeInvalidIdentity = "invalid_identity"
	ErrCodeIdentityTaken   = "identity_taken"
	ErrCodeNotRegistered   = "not_registered"
	ErrCodeSelfCall        = "self_call"
	ErrCodeBadRequest      = "bad_request"
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
