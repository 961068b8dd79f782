package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estatehub/api/internal/contact"
	"github.com/estatehub/api/pkg/mailer"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func testConfig() contact.Config {
	return contact.Config{
		APIKey:         "re_test_key",
		RecipientEmail: "office@estatehub.example",
		FromEmail:      "noreply@estatehub.example",
		FromName:       "EstateHub Properties",
	}
}

func testSubmission() contact.Submission {
	return contact.Submission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "+1 555 0100",
		Message: "Is the Maple Street property still available?",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeliver(t *testing.T) {
	t.Parallel()

	t.Run("sends internal notification then confirmation", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		var sent []*mailer.Email
		sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(1).(*mailer.Email))
		}).Return(nil).Twice()

		svc := contact.NewService(sender, testConfig(), discardLogger())
		require.NoError(t, svc.Deliver(context.Background(), testSubmission()))

		sender.AssertExpectations(t)
		require.Len(t, sent, 2)

		internal := sent[0]
		require.Equal(t, []string{"office@estatehub.example"}, internal.To)
		require.Equal(t, "New contact form submission from Alice", internal.Subject)
		require.Equal(t, "alice@example.com", internal.ReplyTo)
		require.Contains(t, internal.Text, "+1 555 0100")
		require.Contains(t, internal.HTML, "Is the Maple Street property still available?")

		confirmation := sent[1]
		require.Equal(t, []string{"alice@example.com"}, confirmation.To)
		require.Equal(t, "We've received your message ✅", confirmation.Subject)
		require.Contains(t, confirmation.Text, "Hi Alice,")
	})

	t.Run("empty phone becomes N/A", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		var sent []*mailer.Email
		sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(1).(*mailer.Email))
		}).Return(nil).Twice()

		svc := contact.NewService(sender, testConfig(), discardLogger())
		sub := testSubmission()
		sub.Phone = ""
		require.NoError(t, svc.Deliver(context.Background(), sub))

		require.Len(t, sent, 2)
		require.Contains(t, sent[0].Text, "N/A")
	})

	t.Run("missing fields rejected before any send", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		svc := contact.NewService(sender, testConfig(), discardLogger())

		for _, sub := range []contact.Submission{
			{Email: "alice@example.com", Message: "hello"},
			{Name: "Alice", Message: "hello"},
			{Name: "Alice", Email: "alice@example.com"},
			{Name: "   ", Email: "alice@example.com", Message: "hello"},
		} {
			err := svc.Deliver(context.Background(), sub)
			require.ErrorIs(t, err, contact.ErrMissingFields)
		}

		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("incomplete config rejected before any send", func(t *testing.T) {
		t.Parallel()

		for _, cfg := range []contact.Config{
			{RecipientEmail: "office@estatehub.example"},
			{APIKey: "re_test_key"},
			{},
		} {
			sender := new(mockSender)
			svc := contact.NewService(sender, cfg, discardLogger())

			err := svc.Deliver(context.Background(), testSubmission())
			require.ErrorIs(t, err, contact.ErrConfigIncomplete)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		}
	})

	t.Run("internal send failure is fatal and skips confirmation", func(t *testing.T) {
		t.Parallel()

		providerErr := errors.New("resend: 429 rate limit exceeded")
		sender := new(mockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(providerErr).Once()

		svc := contact.NewService(sender, testConfig(), discardLogger())
		err := svc.Deliver(context.Background(), testSubmission())
		require.Error(t, err)

		var sendErr *contact.InternalSendError
		require.ErrorAs(t, err, &sendErr)
		require.Contains(t, sendErr.ProviderResponse(), "429 rate limit exceeded")

		sender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("confirmation failure is swallowed", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("resend: invalid recipient")).Once()

		svc := contact.NewService(sender, testConfig(), discardLogger())
		require.NoError(t, svc.Deliver(context.Background(), testSubmission()))

		sender.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("from falls back to recipient address", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.FromEmail = ""

		sender := new(mockSender)
		var sent []*mailer.Email
		sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(1).(*mailer.Email))
		}).Return(nil).Twice()

		svc := contact.NewService(sender, cfg, discardLogger())
		require.NoError(t, svc.Deliver(context.Background(), testSubmission()))

		require.Len(t, sent, 2)
		require.Equal(t, "EstateHub Properties <office@estatehub.example>", sent[0].From)
	})
}
