package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-bank-console/common"
	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const SessionIDKey contextKey = "sessionID"

const (
	SessionCookieName = "console_session"
	SessionHeader     = "X-Console-Session"
)

var ErrInvalidSession = errors.New("invalid or expired session token")

// SessionManager issues and verifies the signed tokens that tie a browser or
// API caller to its console pages.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for sessionID.
func (m *SessionManager) Issue(sessionID string) (string, error) {
	now := m.now()
	claims := &model.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies a token and returns its session ID.
func (m *SessionManager) Parse(tokenString string) (string, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidSession
	}
	return claims.SessionID, nil
}

func tokenFromRequest(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get(SessionHeader)); header != "" {
		return header
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Middleware resolves the console session of the request. Callers without a
// valid token get a new session, returned both as cookie and header.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := m.Parse(tokenFromRequest(r))
		if err != nil {
			sessionID = uuid.NewString()
			token, err := m.Issue(sessionID)
			if err != nil {
				appErr := common.NewAppError(http.StatusInternalServerError, "Could not start a console session", err)
				appErr.Send(w)
				return
			}
			m.setToken(w, token)
			logger.Log.WithField("session", sessionID).Debug("Issued console session token")
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionManager) setToken(w http.ResponseWriter, token string) {
	w.Header().Set(SessionHeader, token)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearToken expires the session cookie.
func (m *SessionManager) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionID returns the console session of the request.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(SessionIDKey).(string)
	return id
}
