package contact

import (
	"context"
	"log/slog"
	"strings"

	"github.com/estatehub/api/pkg/mailer"
)

// Config holds the email relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey         string `env:"RESEND_API_KEY"`
	RecipientEmail string `env:"CONTACT_RECIPIENT_EMAIL"`
	FromEmail      string `env:"CONTACT_FROM_EMAIL"`
	FromName       string `env:"CONTACT_FROM_NAME" envDefault:"EstateHub Properties"`
}

func (c Config) incomplete() bool {
	return c.APIKey == "" || c.RecipientEmail == ""
}

// from builds the branded sender address. The from address falls back to
// the recipient address when unset.
func (c Config) from() string {
	addr := c.FromEmail
	if addr == "" {
		addr = c.RecipientEmail
	}
	return mailer.Recipient(c.FromName, addr)
}

// Submission is one visitor-supplied contact-form payload. It is consumed
// once and never persisted.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

func (s Submission) trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Phone:   strings.TrimSpace(s.Phone),
		Message: strings.TrimSpace(s.Message),
	}
}

// emailData is the template payload shared by both emails.
type emailData struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	Recipient string
}

// Service delivers contact submissions through the email provider.
type Service struct {
	mailer *mailer.Mailer
	cfg    Config
	log    *slog.Logger
}

// NewService wires the relay to a delivery provider. The markdown email
// templates are embedded in this package.
func NewService(sender mailer.Sender, cfg Config, log *slog.Logger) *Service {
	return &Service{
		mailer: newMailer(sender),
		cfg:    cfg,
		log:    log,
	}
}

// Deliver validates a submission and sends the two outbound emails.
//
// Configuration and validation are checked before any network call. The
// internal notification is sent first and its failure fails the whole
// operation with the provider diagnostic attached. The confirmation to
// the visitor is best-effort: its failure is logged and swallowed because
// the business-critical send already succeeded.
func (s *Service) Deliver(ctx context.Context, sub Submission) error {
	if s.cfg.incomplete() {
		return ErrConfigIncomplete
	}

	sub = sub.trimmed()
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return ErrMissingFields
	}

	phone := sub.Phone
	if phone == "" {
		phone = "N/A"
	}

	data := emailData{
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     phone,
		Message:   sub.Message,
		Recipient: s.cfg.RecipientEmail,
	}

	if err := s.mailer.Send(ctx, mailer.SendParams{
		To:       s.cfg.RecipientEmail,
		Template: internalTemplate,
		From:     s.cfg.from(),
		ReplyTo:  sub.Email,
		Data:     data,
	}); err != nil {
		s.log.ErrorContext(ctx, "internal notification send failed",
			slog.String("error", err.Error()),
		)
		return &InternalSendError{Err: err}
	}

	if err := s.mailer.Send(ctx, mailer.SendParams{
		To:       sub.Email,
		Template: confirmationTemplate,
		From:     s.cfg.from(),
		Data:     data,
	}); err != nil {
		s.log.WarnContext(ctx, "confirmation email send failed",
			slog.String("recipient", sub.Email),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
