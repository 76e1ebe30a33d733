package mailer

import (
	"bytes"
	"errors"
	"testing"

	"stratigo-site/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.messages = append(c.messages, m...)
	return c.err
}

func render(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendLeadNotificationEscapesInput(t *testing.T) {
	sender := &captureSender{}
	svc := NewEmailServiceWithSender(sender, "site@stratigo.co.id", "Stratigo", "hello@stratigo.co.id")

	err := svc.SendLeadNotification(&model.Lead{Name: "Budi", Email: "budi@example.com", Message: "<script>x</script>"})
	require.NoError(t, err)
	require.Len(t, sender.messages, 1)

	assert.Equal(t, []string{"hello@stratigo.co.id"}, sender.messages[0].GetHeader("To"))
	assert.Equal(t, []string{"budi@example.com"}, sender.messages[0].GetHeader("Reply-To"))
	assert.NotContains(t, render(t, sender.messages[0]), "<script>")
}

func TestSendLeadNotificationWithoutRecipientIsSkipped(t *testing.T) {
	sender := &captureSender{}
	svc := NewEmailServiceWithSender(sender, "site@stratigo.co.id", "Stratigo", "")

	require.NoError(t, svc.SendLeadNotification(&model.Lead{Name: "Budi"}))
	assert.Empty(t, sender.messages)
}

func TestSendLeadAcknowledgementWrapsErrors(t *testing.T) {
	dialErr := errors.New("smtp down")
	svc := NewEmailServiceWithSender(&captureSender{err: dialErr}, "site@stratigo.co.id", "Stratigo", "")

	err := svc.SendLeadAcknowledgement(&model.Lead{Name: "Budi", Email: "budi@example.com"})
	assert.ErrorIs(t, err, dialErr)
}
