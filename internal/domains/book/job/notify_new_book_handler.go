package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/shared"
)

// Notifier delivers a new-book notification to a user. The concrete
// transport (email, push) lives behind this interface.
type Notifier interface {
	SendNotification(ctx context.Context, bookTitle, userID string) error
}

// LogNotifier writes the notification to the log. Stands in until a real
// delivery channel is wired up.
type LogNotifier struct{}

func (LogNotifier) SendNotification(_ context.Context, bookTitle, userID string) error {
	log.Info().
		Str("book_title", bookTitle).
		Str("user_id", userID).
		Msgf("Sending notification: new book %q added by user %s", bookTitle, userID)
	return nil
}

// NotifyNewBookHandler consumes notification:new_book tasks. Returning
// an error makes asynq redeliver the task, which is what gives the
// at-least-once guarantee.
type NotifyNewBookHandler struct {
	notifier Notifier
}

func NewNotifyNewBookHandler(notifier Notifier) *NotifyNewBookHandler {
	return &NotifyNewBookHandler{notifier: notifier}
}

func (h *NotifyNewBookHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.NewBookPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.notifier.SendNotification(ctx, payload.BookTitle, payload.UserID); err != nil {
		log.Error().Err(err).Str("book_title", payload.BookTitle).Msg("Failed to send new book notification")
		return fmt.Errorf("send notification: %w", err)
	}

	log.Info().
		Str("book_title", payload.BookTitle).
		Str("user_id", payload.UserID).
		Msg("New book notification sent")

	return nil
}
