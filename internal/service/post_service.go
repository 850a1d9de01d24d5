package service

import (
	"context"

	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type PostService interface {
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	CreateOrUpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id int64) error
	GetByAuthor(ctx context.Context, author string) ([]models.Post, error)
	ChangeDisplayed(ctx context.Context, id int64) error
	GetDisplayedPosts(ctx context.Context, req models.PageableRequest) (*models.PageableResponse, error)
	Like(ctx context.Context, id int64) error
	Dislike(ctx context.Context, id int64) error
	GetMostPopular(ctx context.Context, req models.PageableRequest) ([]models.Post, error)
	SearchByContent(ctx context.Context, content string) ([]models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

func (p *postService) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return p.postRepo.GetWithComments(ctx, id)
}

// CreateOrUpdatePost saves the full snapshot. A zero id creates the post, any
// other id replaces the stored one without checking that it exists first.
func (p *postService) CreateOrUpdatePost(ctx context.Context, post *models.Post) error {
	if post.Rating < 0 {
		post.Rating = 0
	}

	return p.postRepo.Save(ctx, post)
}

func (p *postService) DeletePost(ctx context.Context, id int64) error {
	return p.postRepo.Delete(ctx, id)
}

func (p *postService) GetByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	return p.postRepo.GetByAuthor(ctx, author)
}

func (p *postService) ChangeDisplayed(ctx context.Context, id int64) error {
	post, err := p.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	post.Displayed = !post.Displayed

	return p.postRepo.Save(ctx, post)
}

func (p *postService) GetDisplayedPosts(ctx context.Context, req models.PageableRequest) (*models.PageableResponse, error) {
	req = withDefaults(req)

	posts, total, err := p.postRepo.GetDisplayedPage(ctx, toZeroBased(req.Page), req.Size, req.Field, req.Direction)
	if err != nil {
		return nil, err
	}

	return &models.PageableResponse{
		Content:       posts,
		Page:          req.Page,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
	}, nil
}

func (p *postService) Like(ctx context.Context, id int64) error {
	post, err := p.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	post.Rating++

	return p.postRepo.Save(ctx, post)
}

// Dislike floors the rating at zero; nothing is written when it is already there.
func (p *postService) Dislike(ctx context.Context, id int64) error {
	post, err := p.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.Rating > 0 {
		post.Rating--
		return p.postRepo.Save(ctx, post)
	}

	return nil
}

func (p *postService) GetMostPopular(ctx context.Context, req models.PageableRequest) ([]models.Post, error) {
	req = withDefaults(req)

	posts, _, err := p.postRepo.GetRankedByCommentCount(ctx, toZeroBased(req.Page), req.Size)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (p *postService) SearchByContent(ctx context.Context, content string) ([]models.Post, error) {
	return p.postRepo.SearchByContent(ctx, content)
}

func totalPages(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}
