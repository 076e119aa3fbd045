package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/internal/storage"
	"github.com/Cba40/blogCBA/pkg/dateutils"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

type SubscriberStore interface {
	InsertSubscriber(ctx context.Context, arg model.Subscriber) error
	GetSubscriberByID(ctx context.Context, id string) (model.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]model.SubscriberEntry, error)
	ListRecipients(ctx context.Context) ([]model.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) (int64, error)
}

type SubscriberService struct {
	store SubscriberStore
	log   *zap.SugaredLogger
}

// Subscribe inserts a new subscriber. Re-subscribing an existing email is
// not an error: the storage uniqueness conflict is reported back as
// already=true so the caller can answer with a friendly message.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (subscriber model.Subscriber, already bool, err error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return model.NilSubscriber, false, ErrInvalidEmail
	}

	subscriber = model.Subscriber{
		ID:        model.NewID(),
		Email:     email,
		CreatedAt: dateutils.NowISO(),
	}
	err = s.store.InsertSubscriber(ctx, subscriber)
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return model.NilSubscriber, true, nil
	}
	if err != nil {
		s.log.Errorf("unable subscribe %s. Err:%s", email, err)
		return model.NilSubscriber, false, err
	}
	return subscriber, false, nil
}

func (s *SubscriberService) ListSubscribers(ctx context.Context) ([]model.SubscriberEntry, error) {
	entries, err := s.store.ListSubscribers(ctx)
	if err != nil {
		s.log.Errorf("unable list subscribers. Err:%s", err)
		return nil, err
	}
	return entries, nil
}

// Recipients returns full subscriber rows for dispatch and export.
func (s *SubscriberService) Recipients(ctx context.Context) ([]model.Subscriber, error) {
	return s.store.ListRecipients(ctx)
}

// Unsubscribe removes the subscriber identified by token (the row id) and
// returns the removed email for confirmation messaging.
func (s *SubscriberService) Unsubscribe(ctx context.Context, token string) (string, error) {
	subscriber, err := s.store.GetSubscriberByID(ctx, token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSubscriberNotFound
	}
	if err != nil {
		return "", err
	}

	rows, err := s.store.DeleteSubscriber(ctx, token)
	if err != nil {
		s.log.Errorf("unable unsubscribe %s. Err:%s", token, err)
		return "", err
	}
	if rows == 0 {
		return "", ErrSubscriberNotFound
	}
	return subscriber.Email, nil
}

type NewSubscriberServiceParams struct {
	fx.In

	Store SubscriberStore
	Log   *zap.SugaredLogger
}

func NewSubscriberService(params NewSubscriberServiceParams) *SubscriberService {
	return &SubscriberService{
		store: params.Store,
		log:   params.Log,
	}
}
