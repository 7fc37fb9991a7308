package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/account/service TokenIssuer

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints and verifies the signed access/refresh token pair.
// Distinct secrets keep a leaked access token from being replayed as a
// refresh token and vice versa.
type TokenIssuer interface {
	IssueAccess(accountID, role string) (string, error)
	IssueRefresh(accountID string) (string, error)
	VerifyAccess(tokenString string) (*JWTCustomClaims, error)
	VerifyRefresh(tokenString string) (*JWTCustomClaims, error)
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
	Role      string `json:"role,omitempty"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// IssueAccess signs a short-lived access token. The role claim is included
// only when non-empty, so downstream authorization checks can skip a
// database round trip.
func (ts *TokenService) IssueAccess(accountID, role string) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
}

// IssueRefresh signs a long-lived refresh token carrying only the account id.
func (ts *TokenService) IssueRefresh(accountID string) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.RefreshTokenSecret))
}

func (ts *TokenService) VerifyAccess(tokenString string) (*JWTCustomClaims, error) {
	return verify(tokenString, ts.AccessTokenSecret)
}

func (ts *TokenService) VerifyRefresh(tokenString string) (*JWTCustomClaims, error) {
	return verify(tokenString, ts.RefreshTokenSecret)
}

func verify(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
