// handler/main_test.go
package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go-bank-console/client"
	"go-bank-console/logger"
	"go-bank-console/service"
	"go-bank-console/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const (
	testIBAN    = "ES9121000418450200051332"
	accountJSON = `{"iban":"ES9121000418450200051332","name":"Ana","email":"ana@example.com","subscription":"Free","balance":100,"isBlocked":false,"cards":[]}`
)

// fakeBackend stands in for the accounts service. Unknown routes answer 404
// with a "detail" payload.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter)
	calls  []string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	f := &fakeBackend{routes: map[string]func(w http.ResponseWriter){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.EscapedPath()
		f.mu.Lock()
		f.calls = append(f.calls, key)
		route, ok := f.routes[key]
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail":"Account not found"}`)
			return
		}
		route(w)
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeBackend) on(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = func(w http.ResponseWriter) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func (f *fakeBackend) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

// testConsole is a console router in front of a fake accounts service.
type testConsole struct {
	backend  *fakeBackend
	pages    *service.Pages
	sessions *SessionManager
	router   http.Handler
	token    string
}

func newTestConsole(t *testing.T) *testConsole {
	t.Helper()
	backend, srv := newFakeBackend(t)

	api, err := client.NewAPI(client.Options{BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	pages := service.NewPages(client.NewAccountClient(api), service.PageOptions{})
	t.Cleanup(pages.CloseAll)

	sessions := NewSessionManager("test-secret", time.Hour)
	dashboard := NewDashboardHandler(pages)
	detail := NewAccountDetailHandler(pages)

	r := chi.NewRouter()
	r.Get("/health", HealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Use(sessions.Middleware)
		r.Get("/backend/health", ErrorHandlingMiddleware(dashboard.BackendHealth))
		r.Delete("/session", ErrorHandlingMiddleware(dashboard.CloseSession(sessions)))
		r.Get("/dashboard", ErrorHandlingMiddleware(dashboard.GetDashboard))
		r.Post("/dashboard/search", ErrorHandlingMiddleware(dashboard.SearchAccount))
		r.Post("/dashboard/accounts", ErrorHandlingMiddleware(dashboard.CreateAccount))
		r.Post("/dashboard/deposit", ErrorHandlingMiddleware(dashboard.Deposit))
		r.Post("/dashboard/block", ErrorHandlingMiddleware(dashboard.BlockAccount))
		r.Delete("/dashboard/account", ErrorHandlingMiddleware(dashboard.DeleteAccount))
		r.Post("/search", ErrorHandlingMiddleware(detail.Search))
		r.Get("/accounts/{iban}", ErrorHandlingMiddleware(detail.GetAccount))
		r.Post("/accounts/{iban}/transactions", ErrorHandlingMiddleware(detail.SubmitTransaction))
	})

	return &testConsole{backend: backend, pages: pages, sessions: sessions, router: r}
}

// do sends a request within the console session, starting one on first use.
func (c *testConsole) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(SessionHeader, c.token)
	}

	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)
	if token := rr.Header().Get(SessionHeader); token != "" {
		c.token = token
	}
	return rr
}

type errorBody struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Page    view.PageView `json:"page"`
}

func decodePage(t *testing.T, rr *httptest.ResponseRecorder) view.PageView {
	t.Helper()
	var pv view.PageView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pv), rr.Body.String())
	return pv
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}
