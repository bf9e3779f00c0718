package models

// SuccessClearAfterMs is how long clients keep a success message on screen
// before clearing it. Error messages persist until overwritten.
const SuccessClearAfterMs = 5000

// Message is the feedback envelope attached to every workflow response.
// swagger:model Message
type Message struct {
	// Message text shown to the user
	// example: Welcome alice! Your account has been created successfully.
	Text string `json:"text"`

	// Message kind, "success" or "error"
	// example: success
	Kind string `json:"kind"`

	// Clear hint in milliseconds, 0 means the message persists
	// example: 5000
	ClearAfterMs int `json:"clear_after_ms,omitempty"`
}

// SuccessMessage builds a self-clearing success message.
func SuccessMessage(text string) Message {
	return Message{Text: text, Kind: "success", ClearAfterMs: SuccessClearAfterMs}
}

// ErrorMessage builds a persistent error message.
func ErrorMessage(text string) Message {
	return Message{Text: text, Kind: "error"}
}
