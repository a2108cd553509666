// Package model defines the Account entity and its request payloads.
//
// Account is the single resource this service manages. The struct is the
// canonical serialized shape; AccountPayload is the validated inbound
// shape shared by create and update.
package model

import (
	"github.com/go-playground/validator/v10"
)

// Account is the persisted account record. ID is assigned by the
// database on insert and is immutable afterwards.
type Account struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Email       string `json:"email" db:"email"`
	Address     string `json:"address" db:"address"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	DateJoined  Date   `json:"date_joined" db:"date_joined"`
}

// validate holds the compiled struct-tag rules. validator.Validate is
// safe for concurrent use.
var validate = validator.New()

// AccountPayload is the inbound representation for create and update.
//
// Every field except date_joined is required; date_joined defaults to the
// current day on create and to the stored value on update. There is
// deliberately no ID field: a client-supplied id is ignored in favor of
// the server-assigned one (create) or the path id (update).
type AccountPayload struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	DateJoined  *Date  `json:"date_joined"`
}

// Validate applies the struct-tag rules, returning
// validator.ValidationErrors on failure.
func (p *AccountPayload) Validate() error {
	return validate.Struct(p)
}

// ToAccount builds a new, unpersisted Account from the payload.
// The id is left unset and date_joined defaults to today when absent.
func (p *AccountPayload) ToAccount() *Account {
	dateJoined := Today()
	if p.DateJoined != nil {
		dateJoined = *p.DateJoined
	}

	return &Account{
		Name:        p.Name,
		Email:       p.Email,
		Address:     p.Address,
		PhoneNumber: p.PhoneNumber,
		DateJoined:  dateJoined,
	}
}

// ApplyTo replaces every field of an existing account with the payload's
// values. date_joined is preserved from the stored record unless the
// payload supplies one. The account's id is never touched.
func (p *AccountPayload) ApplyTo(acct *Account) {
	acct.Name = p.Name
	acct.Email = p.Email
	acct.Address = p.Address
	acct.PhoneNumber = p.PhoneNumber
	if p.DateJoined != nil {
		acct.DateJoined = *p.DateJoined
	}
}
