package storage

import (
	"context"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/pkg/sqlutils"
)

const insertArticle = `
INSERT INTO articles (id, title, excerpt, content, author, date, read_time, category, image, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) InsertArticle(ctx context.Context, arg model.Article) error {
	_, err := q.db.ExecContext(ctx, insertArticle,
		arg.ID,
		arg.Title,
		arg.Excerpt,
		arg.Content,
		arg.Author,
		arg.Date,
		arg.ReadTime,
		arg.Category,
		arg.Image,
		arg.Featured,
	)
	if sqlutils.IsUniqueViolation(err) {
		return ErrDuplicateID
	}
	return err
}

const getArticleByID = `
SELECT id, title, excerpt, content, author, date, read_time, category, image, featured
FROM articles
WHERE id = $1`

func (q *Queries) GetArticleByID(ctx context.Context, id string) (model.Article, error) {
	row := q.db.QueryRowContext(ctx, getArticleByID, id)
	var a model.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Excerpt,
		&a.Content,
		&a.Author,
		&a.Date,
		&a.ReadTime,
		&a.Category,
		&a.Image,
		&a.Featured,
	)
	return a, err
}

const listArticles = `
SELECT id, title, excerpt, content, author, date, read_time, category, image, featured
FROM articles
ORDER BY date DESC`

func (q *Queries) ListArticles(ctx context.Context) ([]model.Article, error) {
	rows, err := q.db.QueryContext(ctx, listArticles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Excerpt,
			&a.Content,
			&a.Author,
			&a.Date,
			&a.ReadTime,
			&a.Category,
			&a.Image,
			&a.Featured,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

const getFeaturedArticle = `
SELECT id, title, excerpt, content, author, date, read_time, category, image, featured
FROM articles
WHERE featured
ORDER BY date DESC, id DESC
LIMIT 1`

// GetFeaturedArticle returns the most recent article flagged as featured.
// sql.ErrNoRows when none is flagged.
func (q *Queries) GetFeaturedArticle(ctx context.Context) (model.Article, error) {
	row := q.db.QueryRowContext(ctx, getFeaturedArticle)
	var a model.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Excerpt,
		&a.Content,
		&a.Author,
		&a.Date,
		&a.ReadTime,
		&a.Category,
		&a.Image,
		&a.Featured,
	)
	return a, err
}

// Placeholders stay numbered in order of appearance: go-sqlite3 indexes
// $n parameters by first occurrence, not by the number itself.
const updateArticle = `
UPDATE articles SET
    title = $1, excerpt = $2, content = $3, author = $4, date = $5,
    read_time = $6, category = $7, image = $8, featured = $9
WHERE id = $10`

func (q *Queries) UpdateArticle(ctx context.Context, arg model.Article) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateArticle,
		arg.Title,
		arg.Excerpt,
		arg.Content,
		arg.Author,
		arg.Date,
		arg.ReadTime,
		arg.Category,
		arg.Image,
		arg.Featured,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteArticle = `DELETE FROM articles WHERE id = $1`

func (q *Queries) DeleteArticle(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteArticle, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
