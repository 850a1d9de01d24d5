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

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY id`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	return &post, nil
}

// GetWithComments loads the post together with its owned comment collection.
func (r *PostRepositoryImpl) GetWithComments(ctx context.Context, id int64) (*models.Post, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY id`

	err = r.db.SelectContext(ctx, &post.Comments, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post comments: %w", err)
	}

	return post, nil
}

func (r *PostRepositoryImpl) GetByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE author = $1 ORDER BY id`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, author)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts by author: %w", err)
	}

	return posts, nil
}

// SearchByContent matches a case-insensitive substring. Results keep insertion order.
func (r *PostRepositoryImpl) SearchByContent(ctx context.Context, text string) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE content ILIKE '%' || $1 || '%' ORDER BY id`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, text)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetDisplayedPage(ctx context.Context, page, size int, field, direction string) ([]models.Post, int64, error) {
	query := fmt.Sprintf(
		`SELECT * FROM posts WHERE displayed = TRUE ORDER BY %s LIMIT $1 OFFSET $2`,
		orderClause(field, direction),
	)

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch displayed posts: %w", err)
	}

	var total int64
	err = r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM posts WHERE displayed = TRUE`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count displayed posts: %w", err)
	}

	return posts, total, nil
}

// GetRankedByCommentCount orders posts by how many comments they own.
// Ties break on ascending id so pages stay deterministic.
func (r *PostRepositoryImpl) GetRankedByCommentCount(ctx context.Context, page, size int) ([]models.Post, int64, error) {
	query := `
		SELECT p.id, p.content, p.author, p.rating, p.preview, p.tags, p.creation_date, p.displayed
		FROM posts p
		LEFT JOIN comments c ON c.post_id = p.id
		GROUP BY p.id
		ORDER BY COUNT(c.id) DESC, p.id ASC
		LIMIT $1 OFFSET $2
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch popular posts: %w", err)
	}

	var total int64
	err = r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return posts, total, nil
}

// Save persists the full snapshot. A zero id inserts a new row and fills in the
// generated id; a non-zero id replaces the stored row, falling back to an insert
// with that id when no row matched.
func (r *PostRepositoryImpl) Save(ctx context.Context, post *models.Post) error {
	if post.ID == 0 {
		return r.insert(ctx, post)
	}

	query := `
		UPDATE posts SET
			content = :content,
			author = :author,
			rating = :rating,
			preview = :preview,
			tags = :tags,
			displayed = :displayed
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return r.insertWithID(ctx, post)
	}

	return nil
}

func (r *PostRepositoryImpl) insert(ctx context.Context, post *models.Post) error {
	if post.CreationDate.IsZero() {
		post.CreationDate = time.Now()
	}

	query := `
		INSERT INTO posts (content, author, rating, preview, tags, creation_date, displayed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		post.Content,
		post.Author,
		post.Rating,
		post.Preview,
		post.Tags,
		post.CreationDate,
		post.Displayed,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) insertWithID(ctx context.Context, post *models.Post) error {
	if post.CreationDate.IsZero() {
		post.CreationDate = time.Now()
	}

	query := `
		INSERT INTO posts (id, content, author, rating, preview, tags, creation_date, displayed)
		VALUES (:id, :content, :author, :rating, :preview, :tags, :creation_date, :displayed)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post with id %d: %w", post.ID, err)
	}

	return nil
}

// Delete removes the post and everything it owns in one transaction.
// Deleting an absent id is a no-op.
func (r *PostRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post deletion: %w", err)
	}

	return nil
}
