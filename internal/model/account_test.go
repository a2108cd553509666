package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2008-01-09")
	require.NoError(t, err)
	assert.Equal(t, "2008-01-09", d.String())

	for _, raw := range []string{"", "not-a-date", "09-01-2008", "2008-1-9", "2008-01-09T00:00:00Z"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2008, time.January, 9)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2008-01-09"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(d))
}

func TestDateJSONRejectsNonDateValues(t *testing.T) {
	for _, raw := range []string{`1199836800`, `"2008-01-09T00:00:00Z"`, `true`, `{}`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(raw), &d), "expected %s to be rejected", raw)
	}
}

func validPayload() *AccountPayload {
	return &AccountPayload{
		Name:        "John Doe",
		Email:       "john@doe.com",
		Address:     "123 Main Street, Anytown USA",
		PhoneNumber: "555-1212",
	}
}

func TestAccountPayloadValidate(t *testing.T) {
	require.NoError(t, validPayload().Validate())
}

func TestAccountPayloadValidateMissingFields(t *testing.T) {
	err := (&AccountPayload{}).Validate()
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Len(t, validationErrors, 4)
}

func TestAccountPayloadValidateBadEmail(t *testing.T) {
	p := validPayload()
	p.Email = "not-an-email"

	err := p.Validate()
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "Email", validationErrors[0].Field())
}

func TestToAccountDefaultsDateJoined(t *testing.T) {
	acct := validPayload().ToAccount()

	assert.Zero(t, acct.ID)
	assert.Equal(t, "John Doe", acct.Name)
	assert.True(t, acct.DateJoined.Equal(Today()))
}

func TestToAccountHonorsDateJoined(t *testing.T) {
	p := validPayload()
	joined := NewDate(2008, time.January, 9)
	p.DateJoined = &joined

	acct := p.ToAccount()
	assert.True(t, acct.DateJoined.Equal(joined))
}

func TestApplyToReplacesEveryField(t *testing.T) {
	joined := NewDate(2008, time.January, 9)
	acct := &Account{
		ID:          42,
		Name:        "Old Name",
		Email:       "old@example.com",
		Address:     "Old Address",
		PhoneNumber: "000-0000",
		DateJoined:  joined,
	}

	validPayload().ApplyTo(acct)

	assert.Equal(t, int64(42), acct.ID)
	assert.Equal(t, "John Doe", acct.Name)
	assert.Equal(t, "john@doe.com", acct.Email)
	assert.Equal(t, "123 Main Street, Anytown USA", acct.Address)
	assert.Equal(t, "555-1212", acct.PhoneNumber)
	assert.True(t, acct.DateJoined.Equal(joined), "date_joined must survive an update without one")
}

func TestApplyToOverridesDateJoinedWhenSupplied(t *testing.T) {
	acct := &Account{ID: 7, DateJoined: NewDate(2008, time.January, 9)}

	p := validPayload()
	newDate := NewDate(2020, time.June, 1)
	p.DateJoined = &newDate

	p.ApplyTo(acct)
	assert.True(t, acct.DateJoined.Equal(newDate))
}
