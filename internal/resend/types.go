package resend

// SendRequest is the payload for POST /emails.
type SendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendResponse is returned by a successful send.
type SendResponse struct {
	ID string `json:"id"`
}

// APIError is Resend's error envelope.
type APIError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
