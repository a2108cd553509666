// Package job provides Redis-backed background job processing via Asynq.
//
// The HTTP layer enqueues tasks through JobService.Client; a worker
// server in the same process pulls them from Redis and runs the
// registered handlers.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/accounts-service/internal/config"
	"github.com/deppfellow/accounts-service/internal/lib/email"
)

// JobService holds the Asynq client (enqueue side) and server (worker side).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	email  *email.Client
	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Queue weights give important work a larger share of the worker pool:
// out of 10 concurrent slots, roughly 6 serve critical, 3 default, 1 low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		}),
		email:  email.NewClient(cfg, logger),
		logger: logger,
	}
}

// Start registers task handlers and launches the worker server.
// asynq's Start returns once workers are running; it does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("starting background job server")

	return j.server.Start(mux)
}

// Stop shuts down the worker server and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
