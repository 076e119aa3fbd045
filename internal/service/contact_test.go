package service

import (
	"context"
	"errors"
	"testing"

	nats "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/pkg/natsinfo"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	fail     bool
}

func (f *fakePublisher) Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error) {
	if f.fail {
		return nil, errors.New("no responders")
	}
	f.subjects = append(f.subjects, subj)
	f.payloads = append(f.payloads, data)
	return &nats.PubAck{Stream: "CONTACT"}, nil
}

func newContactService(publisher natsinfo.Publisher) *ContactService {
	return NewContactService(NewContactServiceParams{
		Publisher: publisher,
		Log:       zap.NewNop().Sugar(),
	})
}

func TestSubmitContact(t *testing.T) {
	publisher := &fakePublisher{}
	s := newContactService(publisher)

	err := s.Submit(context.Background(), "Consulta", "Hola, tengo una pregunta.")
	require.NoError(t, err)

	require.Len(t, publisher.subjects, 1)
	assert.Equal(t, natsinfo.CONTACT_STREAM_MESSAGE_SUBJECT, publisher.subjects[0])

	var message natsinfo.ContactMessage
	require.NoError(t, message.Unmarshal(publisher.payloads[0]))
	assert.Equal(t, "Consulta", message.Subject)
	assert.Equal(t, "Hola, tengo una pregunta.", message.Content)
	assert.False(t, message.ReceivedAt.IsZero())
}

func TestSubmitContactMissingFields(t *testing.T) {
	publisher := &fakePublisher{}
	s := newContactService(publisher)
	ctx := context.Background()

	assert.ErrorIs(t, s.Submit(ctx, "", "contenido"), ErrMissingContactFields)
	assert.ErrorIs(t, s.Submit(ctx, "asunto", " "), ErrMissingContactFields)
	assert.Empty(t, publisher.subjects)
}

func TestSubmitContactPublishFailure(t *testing.T) {
	s := newContactService(&fakePublisher{fail: true})

	err := s.Submit(context.Background(), "asunto", "contenido")
	assert.ErrorIs(t, err, ErrContactUnavailable)
}
