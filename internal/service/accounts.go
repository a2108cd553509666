package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/accounts-service/internal/errs"
	"github.com/deppfellow/accounts-service/internal/lib/job"
	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/deppfellow/accounts-service/internal/server"
)

// AccountStore is the persistence contract the service depends on.
// Absent rows are reported as pgx.ErrNoRows; Delete succeeds regardless
// of prior existence. Implemented by repository.AccountsRepository.
type AccountStore interface {
	Create(ctx context.Context, acct *model.Account) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	Update(ctx context.Context, acct *model.Account) (*model.Account, error)
	Delete(ctx context.Context, id int64) error
}

// AccountService implements the account lifecycle:
// absent -> created -> read* -> updated* -> deleted -> absent.
type AccountService struct {
	server *server.Server
	store  AccountStore
}

// NewAccountService constructs the service.
func NewAccountService(s *server.Server, store AccountStore) *AccountService {
	return &AccountService{server: s, store: store}
}

func notFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Account with id [%d] could not be found", id))
}

// Create persists a new account. Any client-supplied id was already
// discarded at the payload level; date_joined defaults to today. A
// welcome email job is enqueued best-effort after the write commits.
func (s *AccountService) Create(ctx context.Context, payload *model.AccountPayload) (*model.Account, error) {
	created, err := s.store.Create(ctx, payload.ToAccount())
	if err != nil {
		return nil, err
	}

	s.enqueueWelcomeEmail(created)

	return created, nil
}

// Get fetches one account by id, mapping an absent row to 404.
func (s *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	acct, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return acct, nil
}

// List returns all accounts. An empty store yields an empty slice, not nil.
func (s *AccountService) List(ctx context.Context) ([]model.Account, error) {
	return s.store.List(ctx)
}

// Update fully replaces the account with the given id.
//
// The stored record is loaded first (404 when absent); every field then
// comes from the payload except date_joined, which is preserved from the
// stored record unless the payload supplies one. The path id always
// wins over anything in the body.
func (s *AccountService) Update(ctx context.Context, id int64, payload *model.AccountPayload) (*model.Account, error) {
	acct, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}

	payload.ApplyTo(acct)

	updated, err := s.store.Update(ctx, acct)
	if err != nil {
		// The row can vanish between the read and the write; that is
		// still "not found" to the caller.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the account with the given id. Deleting an absent id
// is a success: the caller asked for the account to be gone, and it is.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// enqueueWelcomeEmail hands the welcome email to the background queue.
// Enqueue failures are logged and swallowed; the account was created and
// the request must not fail over a missing email.
func (s *AccountService) enqueueWelcomeEmail(acct *model.Account) {
	if s.server.Job == nil {
		return
	}

	task, err := job.NewWelcomeEmailTask(acct.Email, acct.Name)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("account_id", acct.ID).
			Msg("failed to build welcome email task")
		return
	}

	if _, err := s.server.Job.Client.Enqueue(task); err != nil {
		s.server.Logger.Error().Err(err).Int64("account_id", acct.ID).
			Msg("failed to enqueue welcome email task")
	}
}
