package response

// Resp is the standard JSON envelope for system routes and API errors.
// Collection payloads on /todo are written bare and never wrapped.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
