package facades

import "fmt"

// Error is a typed error returned by the provider facades. Code carries the
// provider's canonical error code (for the identity provider, the SDK-style
// "auth/..." codes the user-message table is keyed on); Message carries the
// raw provider message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
