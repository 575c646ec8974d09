package shared

import "github.com/hibiken/asynq"

// Task type identifiers shared between producers and the worker.
const (
	TypeNotifyNewBook = "notification:new_book"
)

// Queue names, by priority.
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// NewBookPayload is enqueued once per successfully created book.
type NewBookPayload struct {
	BookTitle string `json:"book_title"`
	UserID    string `json:"user_id"`
}

// TaskEnqueuer is the producer-side slice of asynq.Client, kept small so
// services can be tested with a fake.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
