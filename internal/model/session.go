// Package model defines data structures for the assistant platform.
package model

// User is the signed-in storefront identity attached to a session, if any.
// Token is the raw bearer token forwarded to the storefront backend when
// fetching the user's orders.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"-"`
}

// SessionState is a point-in-time snapshot of a chat session.
type SessionState struct {
	ID        string    `json:"id"`
	Locale    string    `json:"locale"`
	Open      bool      `json:"open"`
	Composing bool      `json:"composing"`
	Unread    int       `json:"unread"`
	Messages  []Message `json:"messages"`
}

// CreateSessionRequest is the request to mount a new chat session.
type CreateSessionRequest struct {
	Locale string `json:"locale,omitempty"`
}

// SetLocaleRequest switches the active locale of a session.
type SetLocaleRequest struct {
	Locale string `json:"locale"`
}

// ToggleResponse reports the widget visibility after a toggle.
type ToggleResponse struct {
	Open   bool `json:"open"`
	Unread int  `json:"unread"`
}
