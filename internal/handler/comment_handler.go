package handlers

import (
	"encoding/json"
	"net/http"

	"blogCPT/internal/models"
)

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.Create(r.Context(), postID, &comment); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentId")
	if err != nil {
		WriteError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.Delete(r.Context(), commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Comment deleted"}, http.StatusOK)
}

func (h *Handlers) ChangeCommentDisplayed(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentId")
	if err != nil {
		WriteError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.ChangeDisplayed(r.Context(), commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Comment displayed flag changed"}, http.StatusOK)
}

func (h *Handlers) GetDisplayedComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	req, ok := h.decodePageable(w, r)
	if !ok {
		return
	}

	comments, err := h.CommentService.GetDisplayed(r.Context(), postID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) LikeComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentId")
	if err != nil {
		WriteError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.Like(r.Context(), commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Comment liked"}, http.StatusOK)
}

func (h *Handlers) DislikeComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentId")
	if err != nil {
		WriteError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.Dislike(r.Context(), commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Comment disliked"}, http.StatusOK)
}
