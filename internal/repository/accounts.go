package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/deppfellow/accounts-service/internal/server"
)

// AccountsRepository persists accounts in PostgreSQL.
//
// Errors are returned as raw pgx errors (pgx.ErrNoRows included); the
// service layer and sqlerr decide how they surface to clients.
type AccountsRepository struct {
	server *server.Server
}

// NewAccountsRepository constructs the repository.
func NewAccountsRepository(s *server.Server) *AccountsRepository {
	return &AccountsRepository{server: s}
}

const accountColumns = "id, name, email, address, phone_number, date_joined"

func scanAccount(row pgx.Row) (*model.Account, error) {
	var acct model.Account
	err := row.Scan(
		&acct.ID,
		&acct.Name,
		&acct.Email,
		&acct.Address,
		&acct.PhoneNumber,
		&acct.DateJoined.Time,
	)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// Create inserts a new account. The id is assigned by the database and
// returned on the persisted copy; the caller's struct is not mutated.
func (r *AccountsRepository) Create(ctx context.Context, acct *model.Account) (*model.Account, error) {
	row := r.server.DB.Pool.QueryRow(ctx, `
		INSERT INTO accounts (name, email, address, phone_number, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+accountColumns,
		acct.Name, acct.Email, acct.Address, acct.PhoneNumber, acct.DateJoined.Time,
	)
	return scanAccount(row)
}

// GetByID fetches one account. Returns pgx.ErrNoRows when absent.
func (r *AccountsRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	row := r.server.DB.Pool.QueryRow(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = $1", id,
	)
	return scanAccount(row)
}

// List returns every account ordered by id. The order is not part of
// the API contract, but it keeps a single read stable.
func (r *AccountsRepository) List(ctx context.Context) ([]model.Account, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		"SELECT "+accountColumns+" FROM accounts ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, rows.Err()
}

// Update replaces every field of an existing account inside one
// transaction: the row is locked first so the replacement cannot race a
// concurrent delete, then rewritten. Returns pgx.ErrNoRows when the id
// does not exist.
func (r *AccountsRepository) Update(ctx context.Context, acct *model.Account) (*model.Account, error) {
	var updated *model.Account

	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		var locked int64
		if err := tx.QueryRow(ctx,
			"SELECT id FROM accounts WHERE id = $1 FOR UPDATE", acct.ID,
		).Scan(&locked); err != nil {
			return err
		}

		row := tx.QueryRow(ctx, `
			UPDATE accounts
			SET name = $2, email = $3, address = $4, phone_number = $5, date_joined = $6
			WHERE id = $1
			RETURNING `+accountColumns,
			acct.ID, acct.Name, acct.Email, acct.Address, acct.PhoneNumber, acct.DateJoined.Time,
		)

		var err error
		updated, err = scanAccount(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an account. Deleting an id that does not exist is not
// an error; the operation is idempotent by contract.
func (r *AccountsRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.server.DB.Pool.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	return err
}
