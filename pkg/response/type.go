package response

// Resp is the uniform failure envelope. Success payloads are serialized
// directly from the delivery-layer presenter structs, which carry their own
// `success: true` field so the envelope stays flat.
type Resp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// Fail builds a failure envelope.
func Fail(msg, details string) Resp {
	return Resp{
		Success: false,
		Error:   msg,
		Details: details,
	}
}
