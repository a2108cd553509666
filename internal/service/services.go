// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated payloads, services enforce the resource lifecycle rules and
// call the store.
package service

import (
	"github.com/deppfellow/accounts-service/internal/lib/job"
	"github.com/deppfellow/accounts-service/internal/repository"
	"github.com/deppfellow/accounts-service/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Accounts *AccountService
	Job      *job.JobService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Accounts: NewAccountService(s, repos.Accounts),
		Job:      s.Job,
	}, nil
}
