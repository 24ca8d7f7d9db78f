package service

import (
	"context"
	"testing"

	"go-bank-console/client"
	"go-bank-console/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openedDetail(t *testing.T, balance string) (*AccountDetail, *mockAccountClient) {
	t.Helper()
	mockClient := new(mockAccountClient)
	page := NewAccountDetail(mockClient, testIBAN, PageOptions{})
	t.Cleanup(page.Close)

	mockClient.On("GetAccountByIBAN", mock.Anything, testIBAN).Return(testAccount(balance), nil).Once()
	require.NoError(t, page.Open(context.Background()))
	return page, mockClient
}

func TestAccountDetail_Open(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		page, mockClient := openedDetail(t, "250.50")

		state := page.Snapshot()
		assert.Equal(t, PhaseLoaded, state.Phase)
		assert.Equal(t, "250.5", state.Account.Balance.String())
		mockClient.AssertExpectations(t)
	})

	t.Run("unknown IBAN", func(t *testing.T) {
		mockClient := new(mockAccountClient)
		page := NewAccountDetail(mockClient, "ES00", PageOptions{})
		defer page.Close()

		notFound := &client.APIError{StatusCode: 404, Detail: "Account not found"}
		mockClient.On("GetAccountByIBAN", mock.Anything, "ES00").Return(nil, notFound).Once()

		err := page.Open(context.Background())
		assert.True(t, client.IsNotFound(err))

		state := page.Snapshot()
		assert.Equal(t, PhaseErrored, state.Phase)
		assert.Nil(t, state.Account)
		assert.Equal(t, "Loading the account failed: Account not found", state.Error)
	})
}

func TestAccountDetail_Submit(t *testing.T) {
	t.Run("deposit by default", func(t *testing.T) {
		page, mockClient := openedDetail(t, "100")
		mockClient.On("Deposit", mock.Anything, testIBAN, amountEq("25")).Return(testAccount("125"), nil).Once()

		require.NoError(t, page.Submit(context.Background(), TransactionForm{Amount: "25"}))
		assert.Equal(t, "125", page.Account().Balance.String())
		mockClient.AssertExpectations(t)
	})

	t.Run("withdraw within the balance", func(t *testing.T) {
		page, mockClient := openedDetail(t, "100")
		mockClient.On("Withdraw", mock.Anything, testIBAN, amountEq("100")).Return(testAccount("0"), nil).Once()

		form := TransactionForm{Direction: model.DirectionWithdraw, Amount: "100"}
		require.NoError(t, page.Submit(context.Background(), form))
		assert.True(t, page.Account().Balance.IsZero())
		assert.Equal(t, "Withdrawal completed successfully", page.Snapshot().Message.Text)
	})

	t.Run("withdraw above the balance is blocked locally", func(t *testing.T) {
		page, mockClient := openedDetail(t, "100")

		form := TransactionForm{Direction: model.DirectionWithdraw, Amount: "100.01"}
		assert.ErrorIs(t, page.Submit(context.Background(), form), ErrInsufficientBalance)

		state := page.Snapshot()
		assert.Equal(t, PhaseLoaded, state.Phase)
		assert.Equal(t, MessageWarning, state.Message.Kind)
		mockClient.AssertNotCalled(t, "Withdraw", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		page, mockClient := openedDetail(t, "100")

		assert.ErrorIs(t, page.Submit(context.Background(), TransactionForm{Amount: "0"}), ErrAmountNotPositive)
		mockClient.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("service failure keeps the balance", func(t *testing.T) {
		page, mockClient := openedDetail(t, "100")
		blocked := &client.APIError{StatusCode: 403, Detail: "Account is blocked"}
		mockClient.On("Deposit", mock.Anything, testIBAN, amountEq("5")).Return(nil, blocked).Once()

		require.Error(t, page.Submit(context.Background(), TransactionForm{Amount: "5"}))

		state := page.Snapshot()
		assert.Equal(t, PhaseErrored, state.Phase)
		assert.Equal(t, "Processing the transaction failed: Account is blocked", state.Error)
		assert.Equal(t, "100", state.Account.Balance.String())
	})

	t.Run("nothing loaded", func(t *testing.T) {
		mockClient := new(mockAccountClient)
		page := NewAccountDetail(mockClient, testIBAN, PageOptions{})
		defer page.Close()

		assert.ErrorIs(t, page.Submit(context.Background(), TransactionForm{Amount: "5"}), ErrNoAccountLoaded)
	})
}

func TestAccountSearch_Submit(t *testing.T) {
	search := NewAccountSearch(PageOptions{})
	defer search.Close()

	route, err := search.Submit("  ES91 2100  ")
	require.NoError(t, err)
	assert.Equal(t, "/accounts/ES91%202100", route)
	assert.Nil(t, search.Snapshot().Message)

	_, err = search.Submit("")
	assert.ErrorIs(t, err, ErrIBANRequired)
	require.NotNil(t, search.Snapshot().Message)
	assert.Equal(t, "An IBAN is required", search.Snapshot().Message.Text)
}
