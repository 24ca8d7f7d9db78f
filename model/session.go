package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims identify a console session. They carry no account data.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
