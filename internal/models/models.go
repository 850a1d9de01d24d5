package models

import (
	"time"
)

type Post struct {
	ID           int64     `json:"id" db:"id"`
	Content      string    `json:"content" db:"content"`
	Author       string    `json:"author" db:"author"`
	Rating       int       `json:"rating" db:"rating"`
	Preview      string    `json:"preview" db:"preview"`
	Tags         string    `json:"tags" db:"tags"`
	CreationDate time.Time `json:"creationDate" db:"creation_date"`
	Displayed    bool      `json:"displayed" db:"displayed"`
	Comments     []Comment `json:"comments,omitempty" db:"-"`
}

type Comment struct {
	ID           int64     `json:"id" db:"id"`
	PostID       int64     `json:"postId" db:"post_id"`
	Content      string    `json:"content" db:"content"`
	Author       string    `json:"author" db:"author"`
	Rating       int       `json:"rating" db:"rating"`
	CreationDate time.Time `json:"creationDate" db:"creation_date"`
	Displayed    bool      `json:"displayed" db:"displayed"`
}

// PageableRequest carries one-based page numbers at the API boundary.
type PageableRequest struct {
	Page      int    `json:"page" validate:"gte=1"`
	Size      int    `json:"size" validate:"gte=1"`
	Field     string `json:"field"`
	Direction string `json:"direction" validate:"omitempty,oneof=ASC DESC"`
}

type PageableResponse struct {
	Content       []Post `json:"content"`
	Page          int    `json:"page"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}

type SearchRequest struct {
	Content string `json:"content" validate:"required"`
}
