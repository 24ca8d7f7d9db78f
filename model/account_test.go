package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_UnmarshalBackendView(t *testing.T) {
	body := `{
		"name": "Juan Pérez",
		"iban": "ES9121000418450200051332",
		"cards": ["4212345678901234", "4212345678905678"],
		"creation_date": "2025-03-01T10:22:31.123456",
		"email": "juan@x.com",
		"subscription": "Free",
		"balance": 1500.5,
		"isBlocked": false
	}`

	var acc Account
	require.NoError(t, json.Unmarshal([]byte(body), &acc))

	assert.Equal(t, "ES9121000418450200051332", acc.IBAN)
	assert.Equal(t, SubscriptionFree, acc.Subscription)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(acc.Balance))
	require.Len(t, acc.Cards, 2)
	assert.Equal(t, "4212345678901234", acc.Cards[0].PAN)
	assert.Equal(t, "4212345678905678", acc.Cards[1].PAN)
	assert.False(t, acc.Blocked())
}

func TestCard_UnmarshalObject(t *testing.T) {
	body := `{"iban":"X","status":"Blocked","cards":[{"pan":"1234567890123456","card_type":"Debit","expiry":"12/27","status":"Active"}]}`

	var acc Account
	require.NoError(t, json.Unmarshal([]byte(body), &acc))

	require.Len(t, acc.Cards, 1)
	assert.Equal(t, Card{PAN: "1234567890123456", CardType: "Debit", Expiry: "12/27", Status: "Active"}, acc.Cards[0])
	assert.True(t, acc.Blocked(), "status string should mark the account as blocked")
}

func TestSubscription_Valid(t *testing.T) {
	assert.True(t, SubscriptionFree.Valid())
	assert.True(t, SubscriptionPremium.Valid())
	assert.True(t, SubscriptionGold.Valid())
	assert.False(t, Subscription("Platinum").Valid())
	assert.False(t, Subscription("").Valid())
}
