package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TaskWelcome is the task type for the welcome email sent after an
// account is created.
const TaskWelcome = "email:welcome"

// WelcomeEmailPayload is the serialized task data stored in Redis.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// NewWelcomeEmailTask builds the Asynq task for a welcome email.
// Up to 3 retries; a handler run is killed after 30 seconds.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, Name: name})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// handleWelcomeEmailTask sends the welcome email. Returning an error
// makes Asynq schedule a retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	logger := j.logger.With().Str("type", "welcome").Str("to", p.To).Logger()
	logger.Info().Msg("processing welcome email task")

	if err := j.email.SendWelcomeEmail(p.To, p.Name); err != nil {
		logger.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	logger.Info().Msg("sent welcome email")
	return nil
}
