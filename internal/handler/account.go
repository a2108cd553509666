package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/accounts-service/internal/errs"
	"github.com/deppfellow/accounts-service/internal/model"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/deppfellow/accounts-service/internal/service"
)

// AccountHandler exposes the /accounts resource.
type AccountHandler struct {
	Handler
	accounts *service.AccountService
}

// NewAccountHandler constructs the handler.
func NewAccountHandler(s *server.Server, services *service.Services) *AccountHandler {
	return &AccountHandler{
		Handler:  NewHandler(s),
		accounts: services.Accounts,
	}
}

// accountIDRequest binds the :id path parameter for routes without a
// body. The id stays a string here; parsing decides between a domain id
// and a 404.
type accountIDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *accountIDRequest) Validate() error { return nil }

// updateAccountRequest combines the :id path parameter with a full
// account representation in the body. The json:"-" on ID means an "id"
// key in the body is ignored; the path id always wins.
type updateAccountRequest struct {
	ID string `param:"id" json:"-"`
	model.AccountPayload
}

func (r *updateAccountRequest) Validate() error {
	return r.AccountPayload.Validate()
}

// listAccountsRequest is the empty payload for collection reads.
type listAccountsRequest struct{}

func (r *listAccountsRequest) Validate() error { return nil }

// parseAccountID turns the raw path segment into an account id. A
// non-numeric id cannot name any record, so it reports 404 rather than
// 400: the resource simply does not exist.
func parseAccountID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewNotFoundError(fmt.Sprintf("Account with id [%s] could not be found", raw))
	}
	return id, nil
}

// Create handles POST /accounts: 201 with the persisted account and a
// Location header pointing at the new resource.
func (h *AccountHandler) Create() echo.HandlerFunc {
	return Handle[model.AccountPayload](h.Handler, h.create, http.StatusCreated)
}

func (h *AccountHandler) create(c echo.Context, payload *model.AccountPayload) (*model.Account, error) {
	acct, err := h.accounts.Create(c.Request().Context(), payload)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/accounts/%d", acct.ID))

	return acct, nil
}

// Get handles GET /accounts/:id.
func (h *AccountHandler) Get() echo.HandlerFunc {
	return Handle[accountIDRequest](h.Handler, h.get, http.StatusOK)
}

func (h *AccountHandler) get(c echo.Context, req *accountIDRequest) (*model.Account, error) {
	id, err := parseAccountID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.accounts.Get(c.Request().Context(), id)
}

// List handles GET /accounts. An empty store still yields 200 with [].
func (h *AccountHandler) List() echo.HandlerFunc {
	return Handle[listAccountsRequest](h.Handler, h.list, http.StatusOK)
}

func (h *AccountHandler) list(c echo.Context, _ *listAccountsRequest) ([]model.Account, error) {
	return h.accounts.List(c.Request().Context())
}

// Update handles PUT /accounts/:id: a full replacement of the stored
// record from the body.
func (h *AccountHandler) Update() echo.HandlerFunc {
	return Handle[updateAccountRequest](h.Handler, h.update, http.StatusOK)
}

func (h *AccountHandler) update(c echo.Context, req *updateAccountRequest) (*model.Account, error) {
	id, err := parseAccountID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.accounts.Update(c.Request().Context(), id, &req.AccountPayload)
}

// Delete handles DELETE /accounts/:id: always 204, whether or not the
// account existed.
func (h *AccountHandler) Delete() echo.HandlerFunc {
	return HandleNoContent[accountIDRequest](h.Handler, h.delete, http.StatusNoContent)
}

func (h *AccountHandler) delete(c echo.Context, req *accountIDRequest) error {
	id, err := parseAccountID(req.ID)
	if err != nil {
		// An id that cannot exist is as deleted as it gets.
		return nil
	}
	return h.accounts.Delete(c.Request().Context(), id)
}
