package models

import "time"

// MailMessage is the transport-level send request.
type MailMessage struct {
	To          string
	Subject     string
	Body        string
	ContentType string // "HTML" or "Text"
}

// DispatchResult is the structured outcome of one send attempt. Timestamp is
// set iff the send succeeded, Error iff it failed.
type DispatchResult struct {
	Success   bool       `json:"success"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// VerificationParams are the inputs of the verification email template.
type VerificationParams struct {
	Email           string
	VerificationURL string
	ExpiresInHours  int
}
