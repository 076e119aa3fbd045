package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/pkg/natsinfo"
)

var (
	ErrMissingContactFields = errors.New("missing contact subject or content")
	ErrContactUnavailable   = errors.New("unable to accept contact message")
)

// ContactService hands contact-form messages to the CONTACT stream; the
// dispatch worker picks them up and emails the site inbox.
type ContactService struct {
	publisher natsinfo.Publisher
	log       *zap.SugaredLogger
}

func (s *ContactService) Submit(ctx context.Context, subject, content string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		return ErrMissingContactFields
	}

	message := natsinfo.ContactMessage{
		Subject:    subject,
		Content:    content,
		ReceivedAt: time.Now(),
	}
	if _, err := natsinfo.JsPublish(s.publisher, natsinfo.CONTACT_STREAM_MESSAGE_SUBJECT, &message); err != nil {
		s.log.Errorf("unable publish contact message. Err:%s", err)
		return ErrContactUnavailable
	}
	return nil
}

type NewContactServiceParams struct {
	fx.In

	Publisher natsinfo.Publisher
	Log       *zap.SugaredLogger
}

func NewContactService(params NewContactServiceParams) *ContactService {
	return &ContactService{
		publisher: params.Publisher,
		log:       params.Log,
	}
}
