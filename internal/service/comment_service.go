package service

import (
	"context"

	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, postID int64, comment *models.Comment) error
	Delete(ctx context.Context, commentID int64) error
	ChangeDisplayed(ctx context.Context, commentID int64) error
	GetDisplayed(ctx context.Context, postID int64, req models.PageableRequest) ([]models.Comment, error)
	Like(ctx context.Context, commentID int64) error
	Dislike(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Create attaches a new comment to an existing post. The post must exist.
func (c *commentService) Create(ctx context.Context, postID int64, comment *models.Comment) error {
	if _, err := c.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	comment.ID = 0
	comment.PostID = postID
	if comment.Rating < 0 {
		comment.Rating = 0
	}

	return c.commentRepo.Save(ctx, comment)
}

func (c *commentService) Delete(ctx context.Context, commentID int64) error {
	return c.commentRepo.Delete(ctx, commentID)
}

func (c *commentService) ChangeDisplayed(ctx context.Context, commentID int64) error {
	comment, err := c.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	comment.Displayed = !comment.Displayed

	return c.commentRepo.Save(ctx, comment)
}

func (c *commentService) GetDisplayed(ctx context.Context, postID int64, req models.PageableRequest) ([]models.Comment, error) {
	req = withDefaults(req)

	comments, _, err := c.commentRepo.GetDisplayedForPost(ctx, postID, toZeroBased(req.Page), req.Size, req.Field, req.Direction)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (c *commentService) Like(ctx context.Context, commentID int64) error {
	comment, err := c.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	comment.Rating++

	return c.commentRepo.Save(ctx, comment)
}

func (c *commentService) Dislike(ctx context.Context, commentID int64) error {
	comment, err := c.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.Rating > 0 {
		comment.Rating--
		return c.commentRepo.Save(ctx, comment)
	}

	return nil
}
