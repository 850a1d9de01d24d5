package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"blogCPT/cmd/app"
	"blogCPT/internal/config"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/post", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/post", handler.CreateOrUpdatePost).Methods(http.MethodPost, http.MethodPut)
	router.HandleFunc("/post/displayed", handler.GetDisplayedPosts).Methods(http.MethodPost)
	router.HandleFunc("/post/popular", handler.GetMostPopularPosts).Methods(http.MethodPost)
	router.HandleFunc("/post/search", handler.SearchPosts).Methods(http.MethodPost)
	router.HandleFunc("/post/{id:[0-9]+}/info", handler.GetPostInfo).Methods(http.MethodGet)
	router.HandleFunc("/post/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/post/{id:[0-9]+}/displayed", handler.ChangePostDisplayed).Methods(http.MethodPut)
	router.HandleFunc("/post/{id:[0-9]+}/like", handler.LikePost).Methods(http.MethodPut)
	router.HandleFunc("/post/{id:[0-9]+}/dislike", handler.DislikePost).Methods(http.MethodPut)
	router.HandleFunc("/post/{author}", handler.GetPostsByAuthor).Methods(http.MethodGet)

	router.HandleFunc("/post/{postId:[0-9]+}/comment", handler.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/post/{postId:[0-9]+}/comment/displayed", handler.GetDisplayedComments).Methods(http.MethodPost)
	router.HandleFunc("/comment/{commentId:[0-9]+}", handler.DeleteComment).Methods(http.MethodDelete)
	router.HandleFunc("/comment/{commentId:[0-9]+}/displayed", handler.ChangeCommentDisplayed).Methods(http.MethodPut)
	router.HandleFunc("/comment/{commentId:[0-9]+}/like", handler.LikeComment).Methods(http.MethodPut)
	router.HandleFunc("/comment/{commentId:[0-9]+}/dislike", handler.DislikeComment).Methods(http.MethodPut)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
