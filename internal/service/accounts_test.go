package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/accounts-service/internal/errs"
	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/deppfellow/accounts-service/internal/server"
)

// fakeAccountStore is an in-memory AccountStore. It mirrors the
// repository's contract: absent rows surface as pgx.ErrNoRows and
// Delete succeeds regardless of prior existence. nextErr injects one
// failure per operation name.
type fakeAccountStore struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]model.Account
	nextErr map[string]error
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		rows:    make(map[int64]model.Account),
		nextErr: make(map[string]error),
	}
}

func (f *fakeAccountStore) failNext(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextErr[op] = err
}

func (f *fakeAccountStore) takeErr(op string) error {
	if err, ok := f.nextErr[op]; ok {
		delete(f.nextErr, op)
		return err
	}
	return nil
}

func (f *fakeAccountStore) Create(_ context.Context, acct *model.Account) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr("create"); err != nil {
		return nil, err
	}

	f.nextID++
	created := *acct
	created.ID = f.nextID
	f.rows[created.ID] = created
	return &created, nil
}

func (f *fakeAccountStore) GetByID(_ context.Context, id int64) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr("get"); err != nil {
		return nil, err
	}

	acct, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &acct, nil
}

func (f *fakeAccountStore) List(_ context.Context) ([]model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr("list"); err != nil {
		return nil, err
	}

	accounts := []model.Account{}
	for id := int64(1); id <= f.nextID; id++ {
		if acct, ok := f.rows[id]; ok {
			accounts = append(accounts, acct)
		}
	}
	return accounts, nil
}

func (f *fakeAccountStore) Update(_ context.Context, acct *model.Account) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr("update"); err != nil {
		return nil, err
	}

	if _, ok := f.rows[acct.ID]; !ok {
		return nil, pgx.ErrNoRows
	}
	f.rows[acct.ID] = *acct
	updated := *acct
	return &updated, nil
}

func (f *fakeAccountStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr("delete"); err != nil {
		return err
	}

	delete(f.rows, id)
	return nil
}

func newTestAccountService(store AccountStore) *AccountService {
	log := zerolog.Nop()
	return NewAccountService(&server.Server{Logger: &log}, store)
}

func payload() *model.AccountPayload {
	return &model.AccountPayload{
		Name:        "John Doe",
		Email:       "john@doe.com",
		Address:     "123 Main Street",
		PhoneNumber: "555-1212",
	}
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestCreateAssignsIDAndDefaultsDate(t *testing.T) {
	svc := newTestAccountService(newFakeAccountStore())

	acct, err := svc.Create(context.Background(), payload())
	require.NoError(t, err)
	assert.Equal(t, int64(1), acct.ID)
	assert.True(t, acct.DateJoined.Equal(model.Today()))
}

func TestGet(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAccountService(store)

	created, err := svc.Create(context.Background(), payload())
	require.NoError(t, err)

	acct, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, acct)
}

func TestGetAbsent(t *testing.T) {
	svc := newTestAccountService(newFakeAccountStore())

	_, err := svc.Get(context.Background(), 99)
	httpErr := requireStatus(t, err, http.StatusNotFound)
	assert.Contains(t, httpErr.Message, "99")
}

func TestListEmpty(t *testing.T) {
	svc := newTestAccountService(newFakeAccountStore())

	accounts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, accounts, "an empty store must yield [], not null")
	assert.Empty(t, accounts)
}

func TestUpdateReplacesEveryField(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAccountService(store)

	joined := model.NewDate(2008, time.January, 9)
	p := payload()
	p.DateJoined = &joined
	created, err := svc.Create(context.Background(), p)
	require.NoError(t, err)

	replacement := &model.AccountPayload{
		Name:        "Jane Doe",
		Email:       "jane@doe.com",
		Address:     "456 Oak Avenue",
		PhoneNumber: "555-3434",
	}
	updated, err := svc.Update(context.Background(), created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "jane@doe.com", updated.Email)
	assert.True(t, updated.DateJoined.Equal(joined), "date_joined must be preserved")
}

func TestUpdateAbsent(t *testing.T) {
	svc := newTestAccountService(newFakeAccountStore())

	_, err := svc.Update(context.Background(), 99, payload())
	requireStatus(t, err, http.StatusNotFound)
}

func TestUpdateLostRace(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAccountService(store)

	created, err := svc.Create(context.Background(), payload())
	require.NoError(t, err)

	// Row vanishes between the read and the write.
	store.failNext("update", pgx.ErrNoRows)

	_, err = svc.Update(context.Background(), created.ID, payload())
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAccountService(store)

	created, err := svc.Create(context.Background(), payload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), created.ID), "deleting an absent account is still a success")

	_, err = svc.Get(context.Background(), created.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestStoreFailurePropagates(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAccountService(store)

	store.failNext("get", errors.New("connection reset"))

	_, err := svc.Get(context.Background(), 1)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr), "raw store errors must reach the global error handler unmapped")
}
