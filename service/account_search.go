package service

import (
	"net/url"
	"strings"
)

// AccountRoute validates the IBAN typed in the search box and returns the
// route of its detail page. Searching never calls the accounts service.
func AccountRoute(iban string) (string, error) {
	iban = strings.TrimSpace(iban)
	if iban == "" {
		return "", ErrIBANRequired
	}
	return "/accounts/" + url.PathEscape(iban), nil
}

// AccountSearch is the home page search box. It only navigates.
type AccountSearch struct {
	*Page
}

func NewAccountSearch(opts PageOptions) *AccountSearch {
	return &AccountSearch{Page: newPage("accountSearch", opts)}
}

// Submit returns the detail route for iban, or warns when the box is empty.
func (s *AccountSearch) Submit(iban string) (string, error) {
	route, err := AccountRoute(iban)
	if err != nil {
		return "", s.reject("search", err)
	}
	s.ClearMessage()
	return route, nil
}
