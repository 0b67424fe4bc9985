package types

// Envelope is the uniform response wrapper used by every backend endpoint.
// Data is nil when the backend returned no payload (explicit null) or when
// the gateway translated a transport failure into an in-process result.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data"`
	Message string `json:"message"`
}

// Failure builds a failed envelope carrying a diagnostic message.
func Failure[T any](message string) Envelope[T] {
	return Envelope[T]{Success: false, Data: nil, Message: message}
}
