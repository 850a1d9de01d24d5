package handlers

import (
	"encoding/json"
	"net/http"

	"blogCPT/internal/models"
)

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetAllPosts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPostInfo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

// CreateOrUpdatePost serves both POST and PUT: the payload is saved as a full
// snapshot and a zero id means creation.
func (h *Handlers) CreateOrUpdatePost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.PostService.CreateOrUpdatePost(r.Context(), &post); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

func (h *Handlers) GetPostsByAuthor(w http.ResponseWriter, r *http.Request) {
	author := muxVar(r, "author")

	posts, err := h.PostService.GetByAuthor(r.Context(), author)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) ChangePostDisplayed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.ChangeDisplayed(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Post displayed flag changed"}, http.StatusOK)
}

func (h *Handlers) GetDisplayedPosts(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePageable(w, r)
	if !ok {
		return
	}

	response, err := h.PostService.GetDisplayedPosts(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.Like(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Post liked"}, http.StatusOK)
}

func (h *Handlers) DislikePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.Dislike(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Post disliked"}, http.StatusOK)
}

func (h *Handlers) GetMostPopularPosts(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePageable(w, r)
	if !ok {
		return
	}

	posts, err := h.PostService.GetMostPopular(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) SearchPosts(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := h.PostService.SearchByContent(r.Context(), req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) decodePageable(w http.ResponseWriter, r *http.Request) (models.PageableRequest, bool) {
	var req models.PageableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return req, false
	}

	return req, true
}
