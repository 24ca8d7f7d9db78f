// Package view turns accounts and page snapshots into what the console
// displays. Everything here is stateless.
package view

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var spanish = message.NewPrinter(language.MustParse("es-ES"))

// FormatCurrency renders an amount in euros the way es-ES does, e.g.
// "12.345,60 €".
func FormatCurrency(amount decimal.Decimal) string {
	value := amount.Round(2).InexactFloat64()
	return spanish.Sprintf("%v €", number.Decimal(value, number.Scale(2)))
}

// MaskPAN hides all but the last four digits of a card number.
func MaskPAN(pan string) string {
	pan = strings.ReplaceAll(strings.TrimSpace(pan), " ", "")
	if len(pan) < 4 {
		return "**** **** **** ****"
	}
	return "**** **** **** " + pan[len(pan)-4:]
}

type BadgeVariant string

const (
	BadgeSuccess BadgeVariant = "success"
	BadgeDanger  BadgeVariant = "danger"
)

// Badge is the coloured status label of an account or card.
type Badge struct {
	Label   string       `json:"label"`
	Variant BadgeVariant `json:"variant"`
}

var (
	activeBadge  = Badge{Label: "Active", Variant: BadgeSuccess}
	blockedBadge = Badge{Label: "Blocked", Variant: BadgeDanger}
)

// StatusBadge returns the badge for a status string. Anything that is not
// recognisably active is shown as blocked.
func StatusBadge(status string) Badge {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "activa":
		return activeBadge
	}
	return blockedBadge
}

func blockedBadgeFor(blocked bool) Badge {
	if blocked {
		return blockedBadge
	}
	return activeBadge
}
