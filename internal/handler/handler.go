package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"blogCPT/internal/config"
	"blogCPT/internal/service"
)

type Handlers struct {
	PostService    service.PostService
	CommentService service.CommentService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PostService:    services.Post,
		CommentService: services.Comment,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

// HealthHandler responds with a literal OK body.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func muxVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
