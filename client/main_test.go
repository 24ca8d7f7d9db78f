package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type recordedRequest struct {
	Method      string
	Path        string
	Body        string
	ContentType string
	RequestID   string
}

// fakeAccountsService answers every request with a fixed status and body and
// remembers what it received.
type fakeAccountsService struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
	server   *httptest.Server
}

func newFakeAccountsService(t *testing.T, status int, body string) *fakeAccountsService {
	f := &fakeAccountsService{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			Body:        string(payload),
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get(RequestIDHeader),
		})
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		io.WriteString(w, f.body)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAccountsService) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return recordedRequest{}
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeAccountsService) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, f *fakeAccountsService) *AccountClient {
	t.Helper()
	api, err := NewAPI(Options{BaseURL: f.server.URL + "/"})
	if err != nil {
		t.Fatalf("NewAPI() returned an unexpected error: %v", err)
	}
	return NewAccountClient(api)
}

func decimalOf(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func emptyUpdate() model.UpdateAccountRequest {
	return model.NewUpdateAccountRequest("", "", model.SubscriptionPremium)
}
