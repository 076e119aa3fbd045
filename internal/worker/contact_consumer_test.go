package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	nats "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/internal/mailer"
	"github.com/Cba40/blogCBA/pkg/natsinfo"
)

type fakeMailer struct {
	sent []mailer.Mail
	fail bool
}

func (f *fakeMailer) Send(ctx context.Context, mail mailer.Mail) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, mail)
	return nil
}

func newWorkerFixture(m *fakeMailer) *contactConsumerWorker {
	return &contactConsumerWorker{
		mailer: m,
		config: &ContactConfig{
			Inbox:   "contacto@cbablog.local",
			SiteURL: "https://blog.example.com",
		},
		log: zap.NewNop().Sugar(),
	}
}

func contactPayload(t *testing.T, subject, content string) []byte {
	t.Helper()
	message := natsinfo.ContactMessage{
		Subject:    subject,
		Content:    content,
		ReceivedAt: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := message.Marshal()
	require.NoError(t, err)
	return data
}

func TestContactHandlerDeliversToInbox(t *testing.T) {
	m := &fakeMailer{}
	w := newWorkerFixture(m)

	handle := w.handler(context.Background())
	handle(&nats.Msg{
		Subject: natsinfo.CONTACT_STREAM_MESSAGE_SUBJECT,
		Data:    contactPayload(t, "Consulta", "Hola.\n\n¿Cómo va todo?"),
	})

	require.Len(t, m.sent, 1)
	mail := m.sent[0]
	assert.Equal(t, "contacto@cbablog.local", mail.To)
	assert.Equal(t, "Contacto: Consulta", mail.Subject)
	assert.Contains(t, mail.HTML, "¿Cómo va todo?")
	assert.Contains(t, mail.HTML, "https://blog.example.com")
}

func TestContactHandlerDropsBadPayload(t *testing.T) {
	m := &fakeMailer{}
	w := newWorkerFixture(m)

	handle := w.handler(context.Background())
	handle(&nats.Msg{
		Subject: natsinfo.CONTACT_STREAM_MESSAGE_SUBJECT,
		Data:    []byte("{not json"),
	})

	assert.Empty(t, m.sent)
}

func TestContactHandlerKeepsMessageOnDeliveryFailure(t *testing.T) {
	m := &fakeMailer{fail: true}
	w := newWorkerFixture(m)

	handle := w.handler(context.Background())

	// Must not panic; the unacked message is redelivered by the stream.
	handle(&nats.Msg{
		Subject: natsinfo.CONTACT_STREAM_MESSAGE_SUBJECT,
		Data:    contactPayload(t, "Consulta", "Hola."),
	})
	assert.Empty(t, m.sent)
}
