package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-bank-console/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountJSON = `{"iban":"ES9121000418450200051332","name":"Ana","email":"ana@example.com","subscription":"Free","balance":100.5,"isBlocked":false,"cards":["4000000000001234"]}`

// fakeBackend answers "METHOD path" keys with canned responses and records
// every request it gets.
type fakeBackend struct {
	mu       sync.Mutex
	routes   map[string]func(w http.ResponseWriter, body string)
	requests []string
	bodies   map[string]string
	server   *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	f := &fakeBackend{
		routes: map[string]func(w http.ResponseWriter, body string){},
		bodies: map[string]string{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.EscapedPath()

		f.mu.Lock()
		f.requests = append(f.requests, key)
		f.bodies[key] = string(payload)
		route, ok := f.routes[key]
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail":"Account not found"}`)
			return
		}
		route(w, string(payload))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBackend) on(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = func(w http.ResponseWriter, _ string) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func (f *fakeBackend) received(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == key {
			return true
		}
	}
	return false
}

func run(t *testing.T, f *fakeBackend, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", t.TempDir(), "--base-url", f.server.URL + "/"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

const iban = "ES9121000418450200051332"

func TestAccountGet(t *testing.T) {
	f := newFakeBackend(t)
	f.on("GET /v1/accounts/"+iban, http.StatusOK, accountJSON)

	out, err := run(t, f, "", "account", "get", iban)
	require.NoError(t, err)
	assert.Contains(t, out, `"iban": "ES9121000418450200051332"`)
	assert.Contains(t, out, `"balanceText": "100,50 €"`)
	assert.Contains(t, out, `"masked": "**** **** **** 1234"`)
}

func TestAccountGet_YAML(t *testing.T) {
	f := newFakeBackend(t)
	f.on("GET /v1/accounts/"+iban, http.StatusOK, accountJSON)

	out, err := run(t, f, "", "account", "get", iban, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "phase: loaded")
	assert.Contains(t, out, "iban: ES9121000418450200051332")
}

func TestAccountGet_NotFound(t *testing.T) {
	f := newFakeBackend(t)

	_, err := run(t, f, "", "account", "get", "ES00")
	require.Error(t, err)
	assert.Equal(t, "Loading the account failed: Account not found", err.Error())
}

func TestAccountDeposit(t *testing.T) {
	f := newFakeBackend(t)
	f.on("GET /v1/accounts/"+iban, http.StatusOK, accountJSON)
	f.on("PATCH /v1/accounts/operation/"+iban, http.StatusOK, strings.Replace(accountJSON, "100.5", "125.5", 1))

	out, err := run(t, f, "", "account", "deposit", iban, "25")
	require.NoError(t, err)
	assert.Contains(t, out, "125,50 €")
	assert.JSONEq(t, `{"balance":25}`, f.bodies["PATCH /v1/accounts/operation/"+iban])
}

func TestAccountWithdraw_InvalidAmount(t *testing.T) {
	f := newFakeBackend(t)
	f.on("GET /v1/accounts/"+iban, http.StatusOK, accountJSON)

	_, err := run(t, f, "", "account", "withdraw", iban, "-3")
	require.Error(t, err)
	assert.False(t, f.received("PATCH /v1/accounts/operation/"+iban))
}

func TestAccountDelete(t *testing.T) {
	t.Run("declined at the prompt", func(t *testing.T) {
		f := newFakeBackend(t)
		f.on("GET /v1/accounts/"+iban, http.StatusOK, accountJSON)

		_, err := run(t, f, "n\n", "account", "delete", iban)
		assert.ErrorIs(t, err, service.ErrDeleteNotConfirmed)
		assert.False(t, f.received("DELETE /v1/accounts/"+iban))
	})

	t.Run("confirmed with --yes", func(t *testing.T) {
		f := newFakeBackend(t)
		f.on("GET /v1/accounts/"+iban, http.StatusOK, accountJSON)
		f.on("DELETE /v1/accounts/"+iban, http.StatusNoContent, "")

		out, err := run(t, f, "", "account", "delete", iban, "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "Account deleted successfully")
		assert.True(t, f.received("DELETE /v1/accounts/"+iban))
	})
}

func TestCardDelete_Refetches(t *testing.T) {
	f := newFakeBackend(t)
	f.on("GET /v1/accounts/"+iban, http.StatusOK, accountJSON)
	f.on("DELETE /v1/accounts/card/"+iban, http.StatusNoContent, "")

	_, err := run(t, f, "", "card", "delete", iban, "4000000000001234")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pan":"4000000000001234"}`, f.bodies["DELETE /v1/accounts/card/"+iban])

	count := 0
	for _, r := range f.requests {
		if r == "GET /v1/accounts/"+iban {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestHealth(t *testing.T) {
	f := newFakeBackend(t)
	f.on("GET /v1/health", http.StatusOK, `{"status":"UP","service":"accounts"}`)

	out, err := run(t, f, "", "health", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "status: UP")
}

func TestUnsupportedOutput(t *testing.T) {
	f := newFakeBackend(t)

	_, err := run(t, f, "", "health", "-o", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
	assert.Empty(t, f.requests)
}

func TestPromptConfirmer(t *testing.T) {
	var prompt bytes.Buffer
	assert.True(t, promptConfirmer(strings.NewReader("yes\n"), &prompt)("Delete?"))
	assert.Equal(t, "Delete? [y/N]: ", prompt.String())
	assert.False(t, promptConfirmer(strings.NewReader(""), io.Discard)("Delete?"))
	assert.False(t, promptConfirmer(strings.NewReader("nope\n"), io.Discard)("Delete?"))
}
