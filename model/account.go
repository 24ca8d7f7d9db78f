package model

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Subscription is the tier an account is subscribed to.
type Subscription string

const (
	SubscriptionFree    Subscription = "Free"
	SubscriptionPremium Subscription = "Premium"
	SubscriptionGold    Subscription = "Gold"
)

// DefaultSubscription is sent when a new account is created without a tier.
const DefaultSubscription = SubscriptionFree

func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionFree, SubscriptionPremium, SubscriptionGold:
		return true
	}
	return false
}

const (
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
)

// Account is the accounts service view of a bank account, keyed by IBAN.
type Account struct {
	IBAN         string          `json:"iban"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Subscription Subscription    `json:"subscription"`
	Balance      decimal.Decimal `json:"balance"`
	IsBlocked    bool            `json:"isBlocked"`
	Status       string          `json:"status,omitempty"`
	CreationDate string          `json:"creation_date,omitempty"`
	Cards        []Card          `json:"cards"`
}

// Blocked reports whether either the boolean flag or the status string marks
// the account as blocked.
func (a *Account) Blocked() bool {
	return a.IsBlocked || a.Status == StatusBlocked
}

// Card is a card attached to an account. The accounts service may send a card
// either as its bare PAN or as an object.
type Card struct {
	PAN      string `json:"pan"`
	CardType string `json:"card_type,omitempty"`
	Expiry   string `json:"expiry,omitempty"`
	Status   string `json:"status,omitempty"`
}

func (c *Card) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var pan string
		if err := json.Unmarshal(data, &pan); err != nil {
			return err
		}
		*c = Card{PAN: pan}
		return nil
	}

	type plain Card
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Card(p)
	return nil
}

// HealthStatus is the liveness payload of the accounts service.
type HealthStatus struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
}
