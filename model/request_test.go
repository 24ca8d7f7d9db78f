package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAccountRequest_OnlyProvidedFields(t *testing.T) {
	req := NewUpdateAccountRequest("  ", "new@x.com", "")

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"new@x.com"}`, string(data))
	assert.False(t, req.Empty())

	assert.True(t, NewUpdateAccountRequest("", "", "").Empty())
}

func TestUpdateBalanceRequest_SendsNumber(t *testing.T) {
	data, err := json.Marshal(UpdateBalanceRequest{Balance: decimal.RequireFromString("-25.75")})
	require.NoError(t, err)
	assert.Equal(t, `{"balance":-25.75}`, string(data))
}

func TestTransactionIntent_Delta(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		amount    string
		want      string
	}{
		{"deposit positive", DirectionDeposit, "50", "50"},
		{"deposit given negative", DirectionDeposit, "-50", "50"},
		{"withdraw positive", DirectionWithdraw, "20.5", "-20.5"},
		{"withdraw given negative", DirectionWithdraw, "-20.5", "-20.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := TransactionIntent{Direction: tt.direction, Amount: decimal.RequireFromString(tt.amount)}
			assert.True(t, decimal.RequireFromString(tt.want).Equal(intent.Delta()), "got %s", intent.Delta())
		})
	}
}
