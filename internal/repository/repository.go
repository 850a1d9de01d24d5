package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"blogCPT/internal/models"
)

// Fixed descriptions surfaced to API clients, do not reword.
var (
	ErrPostNotFound    = errors.New("Post with the given id not found")
	ErrCommentNotFound = errors.New("Comment with the given id not found")
)

type PostRepository interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetWithComments(ctx context.Context, id int64) (*models.Post, error)
	GetByAuthor(ctx context.Context, author string) ([]models.Post, error)
	SearchByContent(ctx context.Context, text string) ([]models.Post, error)
	GetDisplayedPage(ctx context.Context, page, size int, field, direction string) ([]models.Post, int64, error)
	GetRankedByCommentCount(ctx context.Context, page, size int) ([]models.Post, int64, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetDisplayedForPost(ctx context.Context, postID int64, page, size int, field, direction string) ([]models.Comment, int64, error)
	Save(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	Post    PostRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
	}
}

var sortColumns = map[string]string{
	"creationDate": "creation_date",
	"rating":       "rating",
	"author":       "author",
	"content":      "content",
	"id":           "id",
}

// orderClause maps an entity field to its column. The field lands in ORDER BY,
// so anything outside the whitelist falls back to creation_date.
func orderClause(field, direction string) string {
	column, ok := sortColumns[field]
	if !ok {
		column = "creation_date"
	}

	if direction != "ASC" {
		direction = "DESC"
	}

	return column + " " + direction
}
