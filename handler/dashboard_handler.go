package handler

import (
	"net/http"

	"go-bank-console/common"
	"go-bank-console/logger"
	"go-bank-console/model"
	"go-bank-console/service"

	"github.com/sirupsen/logrus"
)

const dashboardPage = "dashboard"

type DashboardHandler struct {
	pages *service.Pages
}

func NewDashboardHandler(pages *service.Pages) *DashboardHandler {
	return &DashboardHandler{pages: pages}
}

func (h *DashboardHandler) dashboard(r *http.Request, operation string) *service.Dashboard {
	sessionID := SessionID(r)
	logger.Log.WithFields(logrus.Fields{
		"session":   sessionID,
		"operation": operation,
	}).Info("Dashboard request received")
	return h.pages.Dashboard(sessionID)
}

type createAccountForm struct {
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Subscription model.Subscription `json:"subscription"`
}

type searchForm struct {
	IBAN string `json:"iban"`
}

type updateAccountForm struct {
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Subscription model.Subscription `json:"subscription"`
}

type balanceForm struct {
	Amount formAmount `json:"amount"`
}

type cardForm struct {
	PAN string `json:"pan"`
}

type deleteAccountForm struct {
	Confirm bool `json:"confirm"`
}

// GetDashboard godoc
// @Summary      Show the dashboard
// @Description  Returns the dashboard of the console session with the loaded account, if any
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  view.PageView
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) *common.AppError {
	d := h.pages.Dashboard(SessionID(r))
	return respondPage(w, dashboardPage, d, http.StatusOK, nil)
}

// CreateAccount godoc
// @Summary      Create an account
// @Description  Opens a new account and loads it on the dashboard. The subscription defaults to Free
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        account  body      createAccountForm  true  "New account"
// @Success      201      {object}  view.PageView
// @Failure      400      {object}  common.AppError
// @Failure      409      {object}  common.AppError
// @Router       /api/dashboard/accounts [post]
func (h *DashboardHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form createAccountForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	d := h.dashboard(r, "createAccount")
	err := d.CreateAccount(r.Context(), model.CreateAccountRequest{
		Name:         form.Name,
		Email:        form.Email,
		Subscription: form.Subscription,
	})
	return respondPage(w, dashboardPage, d, http.StatusCreated, err)
}

// SearchAccount godoc
// @Summary      Load an account
// @Description  Loads the account with the given IBAN on the dashboard
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        search  body      searchForm  true  "IBAN to load"
// @Success      200     {object}  view.PageView
// @Failure      400     {object}  common.AppError
// @Failure      404     {object}  common.AppError
// @Router       /api/dashboard/search [post]
func (h *DashboardHandler) SearchAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form searchForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	d := h.dashboard(r, "searchAccount")
	err := d.SearchAccount(r.Context(), form.IBAN)
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// UpdateAccount godoc
// @Summary      Update the loaded account
// @Description  Sends only the non-empty fields
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        account  body      updateAccountForm  true  "Fields to change"
// @Success      200      {object}  view.PageView
// @Failure      400      {object}  common.AppError
// @Router       /api/dashboard/account [patch]
func (h *DashboardHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form updateAccountForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	d := h.dashboard(r, "updateAccount")
	err := d.UpdateAccount(r.Context(), model.NewUpdateAccountRequest(form.Name, form.Email, form.Subscription))
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// Deposit godoc
// @Summary      Deposit into the loaded account
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        amount  body      balanceForm  true  "Amount greater than zero"
// @Success      200     {object}  view.PageView
// @Failure      400     {object}  common.AppError
// @Router       /api/dashboard/deposit [post]
func (h *DashboardHandler) Deposit(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form balanceForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	d := h.dashboard(r, "deposit")
	err := d.Deposit(r.Context(), string(form.Amount))
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// Withdraw godoc
// @Summary      Withdraw from the loaded account
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        amount  body      balanceForm  true  "Amount greater than zero"
// @Success      200     {object}  view.PageView
// @Failure      400     {object}  common.AppError
// @Router       /api/dashboard/withdraw [post]
func (h *DashboardHandler) Withdraw(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form balanceForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	d := h.dashboard(r, "withdraw")
	err := d.Withdraw(r.Context(), string(form.Amount))
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// CreateCard godoc
// @Summary      Issue a card for the loaded account
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  view.PageView
// @Router       /api/dashboard/cards [post]
func (h *DashboardHandler) CreateCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	d := h.dashboard(r, "createCard")
	err := d.CreateCard(r.Context())
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// DeleteCard godoc
// @Summary      Delete a card of the loaded account
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        card  body      cardForm  true  "Card to delete"
// @Success      200   {object}  view.PageView
// @Failure      400   {object}  common.AppError
// @Router       /api/dashboard/cards [delete]
func (h *DashboardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form cardForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	d := h.dashboard(r, "deleteCard")
	err := d.DeleteCard(r.Context(), form.PAN)
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// BlockAccount godoc
// @Summary      Block the loaded account
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  view.PageView
// @Router       /api/dashboard/block [post]
func (h *DashboardHandler) BlockAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	d := h.dashboard(r, "blockAccount")
	err := d.BlockAccount(r.Context())
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// UnblockAccount godoc
// @Summary      Unblock the loaded account
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  view.PageView
// @Router       /api/dashboard/unblock [post]
func (h *DashboardHandler) UnblockAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	d := h.dashboard(r, "unblockAccount")
	err := d.UnblockAccount(r.Context())
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// DeleteAccount godoc
// @Summary      Delete the loaded account
// @Description  The request must carry {"confirm": true}; the deletion cannot be undone
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        confirmation  body      deleteAccountForm  true  "Explicit confirmation"
// @Success      200           {object}  view.PageView
// @Failure      400           {object}  common.AppError
// @Router       /api/dashboard/account [delete]
func (h *DashboardHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var form deleteAccountForm
	if appErr := common.ValidateAndDecode(r, &form); appErr != nil {
		return appErr
	}

	d := h.dashboard(r, "deleteAccount")
	err := d.DeleteAccount(r.Context(), func(string) bool { return form.Confirm })
	return respondPage(w, dashboardPage, d, http.StatusOK, err)
}

// BackendHealth godoc
// @Summary      Check the accounts service
// @Description  Calls the health endpoint of the accounts service
// @Tags         health
// @Produce      json
// @Success      200  {object}  model.HealthStatus
// @Failure      503  {object}  common.AppError
// @Router       /api/backend/health [get]
func (h *DashboardHandler) BackendHealth(w http.ResponseWriter, r *http.Request) *common.AppError {
	d := h.dashboard(r, "healthCheck")
	status, err := d.HealthCheck(r.Context())
	if err != nil {
		return respondPage(w, dashboardPage, d, http.StatusOK, err)
	}
	common.WriteJSON(w, http.StatusOK, status)
	return nil
}

// CloseSession godoc
// @Summary      Close the console session
// @Description  Closes every page of the session; requests still running finish without effect
// @Tags         session
// @Success      204
// @Router       /api/session [delete]
func (h *DashboardHandler) CloseSession(sessions *SessionManager) func(http.ResponseWriter, *http.Request) *common.AppError {
	return func(w http.ResponseWriter, r *http.Request) *common.AppError {
		h.pages.CloseSession(SessionID(r))
		sessions.ClearToken(w)
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}
