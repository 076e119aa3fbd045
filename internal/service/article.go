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
)

var (
	ErrArticleNotFound      = errors.New("article not found")
	ErrArticleExists        = errors.New("article already exists")
	ErrMissingArticleFields = errors.New("missing required article fields")
	ErrNoFeaturedArticle    = errors.New("no featured article")
)

// DEFAULT_READ_TIME is applied when a caller omits readTime.
const DEFAULT_READ_TIME = 5

type ArticleStore interface {
	InsertArticle(ctx context.Context, arg model.Article) error
	GetArticleByID(ctx context.Context, id string) (model.Article, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	GetFeaturedArticle(ctx context.Context) (model.Article, error)
	UpdateArticle(ctx context.Context, arg model.Article) (int64, error)
	DeleteArticle(ctx context.Context, id string) (int64, error)
}

type ArticleService struct {
	store ArticleStore
	log   *zap.SugaredLogger
}

// normalizeArticle is the single place defaults are applied: the API and
// client layers pass articles through untouched.
func normalizeArticle(article model.Article) model.Article {
	if article.ID == "" {
		article.ID = model.NewID()
	}
	if article.ReadTime <= 0 {
		article.ReadTime = DEFAULT_READ_TIME
	}
	return article
}

func validateArticle(article model.Article) error {
	if strings.TrimSpace(article.Title) == "" ||
		strings.TrimSpace(article.Excerpt) == "" ||
		strings.TrimSpace(article.Content) == "" {
		return ErrMissingArticleFields
	}
	return nil
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	articles, err := s.store.ListArticles(ctx)
	if err != nil {
		s.log.Errorf("unable list articles. Err:%s", err)
		return nil, err
	}
	return articles, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id string) (model.Article, error) {
	article, err := s.store.GetArticleByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrArticleNotFound
	}
	return article, err
}

func (s *ArticleService) CreateArticle(ctx context.Context, input model.Article) (model.Article, error) {
	if err := validateArticle(input); err != nil {
		return model.NilArticle, err
	}

	article := normalizeArticle(input)
	err := s.store.InsertArticle(ctx, article)
	if errors.Is(err, storage.ErrDuplicateID) {
		return model.NilArticle, ErrArticleExists
	}
	if err != nil {
		s.log.Errorf("unable create the article %s. Err:%s", article.ID, err)
		return model.NilArticle, err
	}
	return article, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id string, input model.Article) (model.Article, error) {
	input.ID = id
	article := normalizeArticle(input)

	rows, err := s.store.UpdateArticle(ctx, article)
	if err != nil {
		s.log.Errorf("unable update the article %s. Err:%s", id, err)
		return model.NilArticle, err
	}
	if rows == 0 {
		return model.NilArticle, ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	rows, err := s.store.DeleteArticle(ctx, id)
	if err != nil {
		s.log.Errorf("unable delete the article %s. Err:%s", id, err)
		return err
	}
	if rows == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// GetFeaturedArticle picks the most recent article flagged featured.
// Several articles may carry the flag at once; most-recent-by-date wins.
func (s *ArticleService) GetFeaturedArticle(ctx context.Context) (model.Article, error) {
	article, err := s.store.GetFeaturedArticle(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrNoFeaturedArticle
	}
	return article, err
}

type NewArticleServiceParams struct {
	fx.In

	Store ArticleStore
	Log   *zap.SugaredLogger
}

func NewArticleService(params NewArticleServiceParams) *ArticleService {
	return &ArticleService{
		store: params.Store,
		log:   params.Log,
	}
}
