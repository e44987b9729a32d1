package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

func TestRenderSpotApproved(t *testing.T) {
	data := map[string]any{
		"Username": "Anu",
		"SpotName": "Rahmath Hotel",
		"District": "Kozhikode",
		"Points":   25,
		"ShareURL": "https://ruchi.example/v1/s/abc123",
	}

	subject, plain, html, err := render(SpotApprovedTemplate, data)
	require.NoError(t, err)
	assert.Equal(t, "Your spot Rahmath Hotel is live on Ruchi Spots!", subject)
	assert.Contains(t, plain, "Hi Anu,")
	assert.Contains(t, plain, "You earned 25 Ruchi Points")
	assert.Contains(t, html, `<a href="https://ruchi.example/v1/s/abc123">`)
}

func TestRenderWithoutHTML(t *testing.T) {
	_, plain, html, err := render(WelcomeTemplate, map[string]any{"Username": "Anu", "Level": "New Explorer"})
	require.NoError(t, err)
	assert.Contains(t, plain, "New Explorer")
	assert.Empty(t, html)
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := render("missing.tmpl", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestNewSMTPMailerRequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(SMTPConfig{From: "hello@ruchi.example"})
	assert.Error(t, err)

	m, err := NewSMTPMailer(SMTPConfig{Host: "localhost", Port: 1025, From: "hello@ruchi.example"})
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestRenderEscapesHTML(t *testing.T) {
	data := map[string]any{
		"Username": "Anu & co",
		"SpotName": "<script>alert(1)</script>",
		"District": "Kozhikode",
		"Points":   25,
		"ShareURL": "javascript:alert(1)",
	}

	subject, plain, html, err := render(SpotApprovedTemplate, data)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "Anu &amp; co")
	assert.NotContains(t, html, `href="javascript:`)

	// subject and plain text are not HTML and stay verbatim
	assert.Contains(t, subject, "<script>alert(1)</script>")
	assert.Contains(t, plain, "Hi Anu & co,")
}

var errRelay = errors.New("relay refused")

func TestSendRetries(t *testing.T) {
	t.Run("gives up after the last attempt without waiting", func(t *testing.T) {
		var attempts []time.Time
		m := &SMTPMailer{
			fromEmail: "hello@ruchi.example",
			backoff:   20 * time.Millisecond,
			send: func(...*mail.Message) error {
				attempts = append(attempts, time.Now())
				return errRelay
			},
		}

		status, err := m.Send(context.Background(), WelcomeTemplate, "Anu", "anu@example.com", map[string]any{"Username": "Anu"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errRelay)
		assert.Equal(t, -1, status)
		require.Len(t, attempts, maxRetires)
		// the waits are 20ms then 40ms, with nothing after the final failure
		assert.GreaterOrEqual(t, attempts[2].Sub(attempts[0]), 60*time.Millisecond)
	})

	t.Run("succeeds on a later attempt", func(t *testing.T) {
		calls := 0
		m := &SMTPMailer{
			fromEmail: "hello@ruchi.example",
			backoff:   time.Millisecond,
			send: func(...*mail.Message) error {
				calls++
				if calls < 2 {
					return errRelay
				}
				return nil
			},
		}

		status, err := m.Send(context.Background(), WelcomeTemplate, "Anu", "anu@example.com", map[string]any{"Username": "Anu"})
		require.NoError(t, err)
		assert.Equal(t, 200, status)
		assert.Equal(t, 2, calls)
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		m := &SMTPMailer{
			fromEmail: "hello@ruchi.example",
			backoff:   time.Hour,
			send: func(...*mail.Message) error {
				calls++
				cancel()
				return errRelay
			},
		}

		_, err := m.Send(ctx, WelcomeTemplate, "Anu", "anu@example.com", map[string]any{"Username": "Anu"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, errRelay)
		assert.Equal(t, 1, calls)
	})
}
