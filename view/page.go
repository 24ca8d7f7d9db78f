package view

import (
	"go-bank-console/model"
	"go-bank-console/service"

	"github.com/shopspring/decimal"
)

// CardView is a card as listed on the dashboard. The full PAN is kept so the
// card can be deleted.
type CardView struct {
	PAN    string `json:"pan"`
	Masked string `json:"masked"`
	Type   string `json:"type"`
	Expiry string `json:"expiry"`
	Badge  Badge  `json:"badge"`
}

// AccountSummary is the account card shown on every page.
type AccountSummary struct {
	IBAN         string             `json:"iban"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Subscription model.Subscription `json:"subscription"`
	Balance      decimal.Decimal    `json:"balance"`
	BalanceText  string             `json:"balanceText"`
	Blocked      bool               `json:"blocked"`
	Badge        Badge              `json:"badge"`
	CreationDate string             `json:"creationDate,omitempty"`
	Cards        []CardView         `json:"cards"`
}

func NewAccountSummary(acc *model.Account) *AccountSummary {
	if acc == nil {
		return nil
	}

	cards := make([]CardView, 0, len(acc.Cards))
	for _, c := range acc.Cards {
		cards = append(cards, newCardView(c))
	}

	return &AccountSummary{
		IBAN:         acc.IBAN,
		Name:         acc.Name,
		Email:        acc.Email,
		Subscription: acc.Subscription,
		Balance:      acc.Balance,
		BalanceText:  FormatCurrency(acc.Balance),
		Blocked:      acc.Blocked(),
		Badge:        blockedBadgeFor(acc.Blocked()),
		CreationDate: acc.CreationDate,
		Cards:        cards,
	}
}

func newCardView(c model.Card) CardView {
	v := CardView{
		PAN:    c.PAN,
		Masked: MaskPAN(c.PAN),
		Type:   c.CardType,
		Expiry: c.Expiry,
		Badge:  activeBadge,
	}
	if v.Type == "" {
		v.Type = "Debit"
	}
	if v.Expiry == "" {
		v.Expiry = "N/A"
	}
	if c.Status != "" {
		v.Badge = StatusBadge(c.Status)
	}
	return v
}

// PageView is the JSON rendering of a page snapshot.
type PageView struct {
	Page    string           `json:"page"`
	Phase   string           `json:"phase"`
	Loading bool             `json:"loading"`
	Error   string           `json:"error,omitempty"`
	Message *service.Message `json:"message,omitempty"`
	Account *AccountSummary  `json:"account"`
	Route   string           `json:"route,omitempty"`
}

func NewPageView(page string, state service.State) PageView {
	return PageView{
		Page:    page,
		Phase:   state.Phase.String(),
		Loading: state.Loading(),
		Error:   state.Error,
		Message: state.Message,
		Account: NewAccountSummary(state.Account),
	}
}
