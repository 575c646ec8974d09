package main

import (
	"github.com/hibiken/asynq"

	bookJob "bookstore-catalog/internal/domains/book/job"
	"bookstore-catalog/internal/shared"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	notifyNewBook *bookJob.NotifyNewBookHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers() *HandlerRegistry {
	return &HandlerRegistry{
		notifyNewBook: bookJob.NewNotifyNewBookHandler(bookJob.LogNotifier{}),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeNotifyNewBook, h.notifyNewBook.ProcessTask)
}
