package queue

import (
	"github.com/hibiken/asynq"
)

// NewClient builds the asynq producer client. It shares the Redis
// instance used by the cache but is owned separately so closing one does
// not affect the other.
func NewClient(redisAddr, password string, db int) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})
}
