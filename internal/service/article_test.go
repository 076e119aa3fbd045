package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/internal/storage"
)

func newArticleService() *ArticleService {
	return NewArticleService(NewArticleServiceParams{
		Store: storage.NewMemoryStore(),
		Log:   zap.NewNop().Sugar(),
	})
}

func validArticle(id string) model.Article {
	return model.Article{
		ID:       id,
		Title:    "T",
		Excerpt:  "E",
		Content:  "C",
		Author:   "A",
		Date:     "2025-01-01",
		Category: "ia",
		Image:    "x.jpg",
	}
}

func TestCreateArticleAppliesDefaults(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	created, err := s.CreateArticle(ctx, validArticle("1"))
	require.NoError(t, err)
	assert.Equal(t, 5, created.ReadTime)
	assert.False(t, created.Featured)

	got, err := s.GetArticle(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateArticleKeepsExplicitFields(t *testing.T) {
	s := newArticleService()

	input := validArticle("1")
	input.ReadTime = 12
	input.Featured = true

	created, err := s.CreateArticle(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 12, created.ReadTime)
	assert.True(t, created.Featured)
}

func TestCreateArticleGeneratesID(t *testing.T) {
	s := newArticleService()

	created, err := s.CreateArticle(context.Background(), validArticle(""))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreateArticleMissingFields(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	for _, mutate := range []func(*model.Article){
		func(a *model.Article) { a.Title = "" },
		func(a *model.Article) { a.Excerpt = " " },
		func(a *model.Article) { a.Content = "" },
	} {
		input := validArticle("1")
		mutate(&input)
		_, err := s.CreateArticle(ctx, input)
		assert.ErrorIs(t, err, ErrMissingArticleFields)
	}

	_, err := s.GetArticle(ctx, "1")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestCreateArticleDuplicateID(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	_, err := s.CreateArticle(ctx, validArticle("1"))
	require.NoError(t, err)

	_, err = s.CreateArticle(ctx, validArticle("1"))
	assert.ErrorIs(t, err, ErrArticleExists)
}

func TestArticleNotFound(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	_, err := s.GetArticle(ctx, "missing")
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, err = s.UpdateArticle(ctx, "missing", validArticle("missing"))
	assert.ErrorIs(t, err, ErrArticleNotFound)

	assert.ErrorIs(t, s.DeleteArticle(ctx, "missing"), ErrArticleNotFound)
}

func TestUpdateArticleOverwrites(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	_, err := s.CreateArticle(ctx, validArticle("1"))
	require.NoError(t, err)

	input := validArticle("ignored")
	input.Title = "Nuevo título"
	input.Featured = true

	updated, err := s.UpdateArticle(ctx, "1", input)
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "Nuevo título", updated.Title)
	assert.True(t, updated.Featured)

	got, err := s.GetArticle(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestDeleteArticle(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	_, err := s.CreateArticle(ctx, validArticle("1"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteArticle(ctx, "1"))

	_, err = s.GetArticle(ctx, "1")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestListArticlesNewestFirst(t *testing.T) {
	dates := []string{"2024-06-01", "2025-03-10", "2023-12-31", "2025-01-01"}

	// Insertion order must not matter.
	for rotation := range dates {
		s := newArticleService()
		ctx := context.Background()

		for i := range dates {
			date := dates[(i+rotation)%len(dates)]
			input := validArticle(date)
			input.Date = date
			_, err := s.CreateArticle(ctx, input)
			require.NoError(t, err)
		}

		articles, err := s.ListArticles(ctx)
		require.NoError(t, err)
		require.Len(t, articles, len(dates))
		for i := 1; i < len(articles); i++ {
			assert.GreaterOrEqual(t, articles[i-1].Date, articles[i].Date)
		}
	}
}

func TestGetFeaturedArticleMostRecent(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	older := validArticle("old")
	older.Date = "2024-01-01"
	older.Featured = true
	newer := validArticle("new")
	newer.Date = "2025-01-01"
	newer.Featured = true
	plain := validArticle("plain")
	plain.Date = "2026-01-01"

	for _, input := range []model.Article{older, newer, plain} {
		_, err := s.CreateArticle(ctx, input)
		require.NoError(t, err)
	}

	featured, err := s.GetFeaturedArticle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", featured.ID)
}

func TestGetFeaturedArticleNoneFlagged(t *testing.T) {
	s := newArticleService()
	ctx := context.Background()

	_, err := s.CreateArticle(ctx, validArticle("1"))
	require.NoError(t, err)

	_, err = s.GetFeaturedArticle(ctx)
	assert.ErrorIs(t, err, ErrNoFeaturedArticle)
}
