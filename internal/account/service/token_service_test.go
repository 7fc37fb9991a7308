package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/service"
)

func TestTokenService_AccessRoundTrip(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 43200)

	token, err := ts.IssueAccess("account-1", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ts.VerifyAccess(token)
	assert.NoError(t, err)
	assert.Equal(t, "account-1", claims.AccountID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenService_RefreshRoundTrip(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 43200)

	token, err := ts.IssueRefresh("account-1")
	assert.NoError(t, err)

	claims, err := ts.VerifyRefresh(token)
	assert.NoError(t, err)
	assert.Equal(t, "account-1", claims.AccountID)
	assert.Empty(t, claims.Role)
}

func TestTokenService_AccessTokenRejectedAsRefresh(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 43200)

	token, err := ts.IssueAccess("account-1", "admin")
	assert.NoError(t, err)

	claims, err := ts.VerifyRefresh(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_RefreshTokenRejectedAsAccess(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 43200)

	token, err := ts.IssueRefresh("account-1")
	assert.NoError(t, err)

	claims, err := ts.VerifyAccess(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", -1, 43200)

	token, err := ts.IssueAccess("account-1", "admin")
	assert.NoError(t, err)

	claims, err := ts.VerifyAccess(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_WrongSecretRejected(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 43200)
	other := service.NewTokenService("another-secret", "refresh-secret", 15, 43200)

	token, err := ts.IssueAccess("account-1", "")
	assert.NoError(t, err)

	claims, err := other.VerifyAccess(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_RoleClaimOmittedWhenEmpty(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 43200)

	token, err := ts.IssueAccess("account-1", "")
	assert.NoError(t, err)

	claims, err := ts.VerifyAccess(token)
	assert.NoError(t, err)
	assert.Empty(t, claims.Role)
}
