package storage

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/Cba40/blogCBA/internal/model"
)

// MemoryStore is a mutex-guarded stand-in for Queries. It backs the test
// suites and driverless local runs, and honors the same sentinel errors.
type MemoryStore struct {
	mu          sync.RWMutex
	articles    []model.Article
	subscribers []model.Subscriber
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) InsertArticle(ctx context.Context, arg model.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.articles {
		if a.ID == arg.ID {
			return ErrDuplicateID
		}
	}
	m.articles = append(m.articles, arg)
	return nil
}

func (m *MemoryStore) GetArticleByID(ctx context.Context, id string) (model.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return model.NilArticle, sql.ErrNoRows
}

func (m *MemoryStore) ListArticles(ctx context.Context) ([]model.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	articles := make([]model.Article, len(m.articles))
	copy(articles, m.articles)
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date > articles[j].Date
	})
	return articles, nil
}

func (m *MemoryStore) GetFeaturedArticle(ctx context.Context) (model.Article, error) {
	articles, _ := m.ListArticles(ctx)
	for _, a := range articles {
		if a.Featured {
			return a, nil
		}
	}
	return model.NilArticle, sql.ErrNoRows
}

func (m *MemoryStore) UpdateArticle(ctx context.Context, arg model.Article) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.articles {
		if a.ID == arg.ID {
			m.articles[i] = arg
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MemoryStore) DeleteArticle(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.articles {
		if a.ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MemoryStore) InsertSubscriber(ctx context.Context, arg model.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Id collisions collapse into ErrDuplicateEmail like the SQL store;
	// process-monotonic ids keep that branch from firing in practice.
	for _, s := range m.subscribers {
		if s.Email == arg.Email || s.ID == arg.ID {
			return ErrDuplicateEmail
		}
	}
	m.subscribers = append(m.subscribers, arg)
	return nil
}

func (m *MemoryStore) GetSubscriberByID(ctx context.Context, id string) (model.Subscriber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.subscribers {
		if s.ID == id {
			return s, nil
		}
	}
	return model.NilSubscriber, sql.ErrNoRows
}

func (m *MemoryStore) ListSubscribers(ctx context.Context) ([]model.SubscriberEntry, error) {
	subscribers, _ := m.ListRecipients(ctx)
	entries := make([]model.SubscriberEntry, 0, len(subscribers))
	for _, s := range subscribers {
		entries = append(entries, model.SubscriberEntry{Email: s.Email, CreatedAt: s.CreatedAt})
	}
	return entries, nil
}

func (m *MemoryStore) ListRecipients(ctx context.Context) ([]model.Subscriber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subscribers := make([]model.Subscriber, len(m.subscribers))
	copy(subscribers, m.subscribers)
	sort.SliceStable(subscribers, func(i, j int) bool {
		return subscribers[i].CreatedAt > subscribers[j].CreatedAt
	})
	return subscribers, nil
}

func (m *MemoryStore) DeleteSubscriber(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.subscribers {
		if s.ID == id {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
