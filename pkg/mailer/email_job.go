package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects one of the built-in messages; Data feeds its fields.
// Subject/Text/HTML may be set directly instead for one-off messages.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome", "order_confirmation", "contact_ack", "password_reset"
	Data     map[string]any `json:"data,omitempty"`
}
