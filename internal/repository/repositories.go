// Package repository handles all interaction with the database.
//
// It contains the raw SQL and the methods to fetch, persist, update and
// delete rows, keeping SQL out of the service layer.
package repository

import (
	"github.com/deppfellow/accounts-service/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Accounts *AccountsRepository
}

// NewRepositories constructs the repository container from the
// application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Accounts: NewAccountsRepository(s),
	}
}
