package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-bank-console/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAppError_Send(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewAppError(http.StatusConflict, "busy", cause).WithPage(map[string]string{"phase": "loading"})

	rr := httptest.NewRecorder()
	appErr.Send(rr)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.ErrorIs(t, appErr, cause)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "busy", body["message"])
	assert.Equal(t, float64(http.StatusConflict), body["code"])
	assert.Equal(t, map[string]interface{}{"phase": "loading"}, body["page"])
}

func TestValidateAndDecode(t *testing.T) {
	type payload struct {
		PAN string `json:"pan" validate:"required"`
	}

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"pan":"4000"}`},
		{name: "missing field", body: `{}`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "malformed", body: `{"pan":`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var p payload
			appErr := ValidateAndDecode(req, &p)
			if tc.wantErr {
				require.NotNil(t, appErr)
				assert.Equal(t, http.StatusBadRequest, appErr.Code)
				return
			}
			assert.Nil(t, appErr)
			assert.Equal(t, "4000", p.PAN)
		})
	}
}
