package handler

import (
	"net/http"
	"net/url"

	"go-bank-console/common"
	"go-bank-console/logger"
	"go-bank-console/model"
	"go-bank-console/service"
	"go-bank-console/view"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	accountDetailPage = "accountDetail"
	accountSearchPage = "accountSearch"
)

type AccountDetailHandler struct {
	pages *service.Pages
}

func NewAccountDetailHandler(pages *service.Pages) *AccountDetailHandler {
	return &AccountDetailHandler{pages: pages}
}

type transactionForm struct {
	Type   model.Direction `json:"type"`
	Amount formAmount      `json:"amount"`
}

func ibanParam(r *http.Request) string {
	raw := chi.URLParam(r, "iban")
	if iban, err := url.PathUnescape(raw); err == nil {
		return iban
	}
	return raw
}

// Search godoc
// @Summary      Search an account
// @Description  Validates the IBAN and returns the route of its detail page. No request reaches the accounts service
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        search  body      searchForm  true  "IBAN to look up"
// @Success      200     {object}  view.PageView
// @Failure      400     {object}  common.AppError
// @Router       /api/search [post]
func (h *AccountDetailHandler) Search(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form searchForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	search := h.pages.Search(SessionID(r))
	route, err := search.Submit(form.IBAN)
	pv := view.NewPageView(accountSearchPage, search.Snapshot())
	if err != nil {
		return pageError(err, pv)
	}
	pv.Route = route
	common.WriteJSON(w, http.StatusOK, pv)
	return nil
}

// GetAccount godoc
// @Summary      Open the account detail page
// @Description  Loads the account with the given IBAN. Opening another IBAN closes the previous detail page
// @Tags         accounts
// @Produce      json
// @Param        iban  path      string  true  "Account IBAN"
// @Success      200   {object}  view.PageView
// @Failure      404   {object}  common.AppError
// @Router       /api/accounts/{iban} [get]
func (h *AccountDetailHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	iban := ibanParam(r)
	logger.Log.WithFields(logrus.Fields{
		"session": SessionID(r),
		"iban":    iban,
	}).Info("Account detail request received")

	page, _ := h.pages.OpenAccountDetail(SessionID(r), iban)
	err := page.Open(r.Context())
	return respondPage(w, accountDetailPage, page, http.StatusOK, err)
}

// SubmitTransaction godoc
// @Summary      Deposit or withdraw
// @Description  Validates the amount against the displayed balance and applies it to the account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        iban         path      string           true  "Account IBAN"
// @Param        transaction  body      transactionForm  true  "Transaction, type defaults to deposit"
// @Success      200          {object}  view.PageView
// @Failure      400          {object}  common.AppError
// @Failure      409          {object}  common.AppError
// @Router       /api/accounts/{iban}/transactions [post]
func (h *AccountDetailHandler) SubmitTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form transactionForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	iban := ibanParam(r)
	logger.Log.WithFields(logrus.Fields{
		"session": SessionID(r),
		"iban":    iban,
		"type":    form.Type,
	}).Info("Transaction request received")

	page, created := h.pages.OpenAccountDetail(SessionID(r), iban)
	if created || page.Account() == nil {
		if err := page.Open(r.Context()); err != nil {
			return respondPage(w, accountDetailPage, page, http.StatusOK, err)
		}
	}

	err := page.Submit(r.Context(), service.TransactionForm{
		Direction: form.Type,
		Amount:    string(form.Amount),
	})
	return respondPage(w, accountDetailPage, page, http.StatusOK, err)
}
