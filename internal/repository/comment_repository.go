package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"blogCPT/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) GetDisplayedForPost(ctx context.Context, postID int64, page, size int, field, direction string) ([]models.Comment, int64, error) {
	query := fmt.Sprintf(
		`SELECT * FROM comments WHERE post_id = $1 AND displayed = TRUE ORDER BY %s LIMIT $2 OFFSET $3`,
		orderClause(field, direction),
	)

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch displayed comments: %w", err)
	}

	var total int64
	err = r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1 AND displayed = TRUE`, postID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count displayed comments: %w", err)
	}

	return comments, total, nil
}

// Save persists the full snapshot, same split as the post repository: zero id
// inserts, non-zero id replaces the stored row.
func (r *CommentRepositoryImpl) Save(ctx context.Context, comment *models.Comment) error {
	if comment.ID == 0 {
		if comment.CreationDate.IsZero() {
			comment.CreationDate = time.Now()
		}

		query := `
			INSERT INTO comments (post_id, content, author, rating, creation_date, displayed)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		err := r.db.QueryRowxContext(ctx, query,
			comment.PostID,
			comment.Content,
			comment.Author,
			comment.Rating,
			comment.CreationDate,
			comment.Displayed,
		).Scan(&comment.ID)
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		return nil
	}

	query := `
		UPDATE comments SET
			content = :content,
			author = :author,
			rating = :rating,
			displayed = :displayed
		WHERE id = :id
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return nil
}

// Delete removes only the comment, never its post. Absent ids are a no-op.
func (r *CommentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
