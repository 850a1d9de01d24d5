package service

import (
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type Service struct {
	Post    PostService
	Comment CommentService
}

func NewService(rep *repository.Repository) *Service {
	return &Service{
		Post:    NewPostService(rep.Post),
		Comment: NewCommentService(rep.Comment, rep.Post),
	}
}

const (
	defaultSortField = "creationDate"
	defaultDirection = "DESC"
)

// withDefaults fills in the sort defaults and floors the page size.
// Pages are one-based at this boundary.
func withDefaults(req models.PageableRequest) models.PageableRequest {
	if req.Field == "" {
		req.Field = defaultSortField
	}
	if req.Direction == "" {
		req.Direction = defaultDirection
	}
	if req.Size < 1 {
		req.Size = 1
	}
	return req
}

func toZeroBased(page int) int {
	if page < 1 {
		return 0
	}
	return page - 1
}
