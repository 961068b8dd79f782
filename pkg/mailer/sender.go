package mailer

import "context"

// Sender is the minimal interface an email provider must implement.
// It receives a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message. The Email must have To, Subject,
	// and HTML already set. Returns an error if delivery fails; the
	// error text carries the provider's diagnostic response.
	Send(ctx context.Context, email *Email) error
}
