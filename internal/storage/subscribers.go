package storage

import (
	"context"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/pkg/sqlutils"
)

const insertSubscriber = `
INSERT INTO subscribers (id, email, created_at)
VALUES ($1, $2, $3)`

// InsertSubscriber maps any unique violation to ErrDuplicateEmail. The
// table also has a primary key on id, but ids are process-monotonic
// (model.NewID), so in practice only the email constraint can fire.
func (q *Queries) InsertSubscriber(ctx context.Context, arg model.Subscriber) error {
	_, err := q.db.ExecContext(ctx, insertSubscriber, arg.ID, arg.Email, arg.CreatedAt)
	if sqlutils.IsUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

const getSubscriberByID = `
SELECT id, email, created_at
FROM subscribers
WHERE id = $1`

func (q *Queries) GetSubscriberByID(ctx context.Context, id string) (model.Subscriber, error) {
	row := q.db.QueryRowContext(ctx, getSubscriberByID, id)
	var s model.Subscriber
	err := row.Scan(&s.ID, &s.Email, &s.CreatedAt)
	return s, err
}

const listSubscribers = `
SELECT email, created_at
FROM subscribers
ORDER BY created_at DESC`

func (q *Queries) ListSubscribers(ctx context.Context) ([]model.SubscriberEntry, error) {
	rows, err := q.db.QueryContext(ctx, listSubscribers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.SubscriberEntry{}
	for rows.Next() {
		var e model.SubscriberEntry
		if err := rows.Scan(&e.Email, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

const listRecipients = `
SELECT id, email, created_at
FROM subscribers
ORDER BY created_at DESC`

// ListRecipients returns full subscriber rows, ids included, for
// newsletter dispatch and data export.
func (q *Queries) ListRecipients(ctx context.Context) ([]model.Subscriber, error) {
	rows, err := q.db.QueryContext(ctx, listRecipients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := []model.Subscriber{}
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}

const deleteSubscriber = `DELETE FROM subscribers WHERE id = $1`

func (q *Queries) DeleteSubscriber(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteSubscriber, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
