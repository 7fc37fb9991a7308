package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
	"github.com/Shohjahon77877/e-shop-florify/internal/apperr"
	"github.com/Shohjahon77877/e-shop-florify/internal/logs"
)

const otpMailSubject = "Florify"

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionService drives the sign-in → challenge → confirm → refresh → logout
// lifecycle for one role. The admin, salesman and client endpoints are three
// instances of this one service, differing only in account lookup, display
// label and whether the role claim rides on the access token.
type SessionService struct {
	accounts    domain.AccountLookup
	tokens      TokenIssuer
	challenges  *ChallengeCache
	notifier    domain.Notifier
	label       string
	withRole    bool
	otpTTL      time.Duration
	generateOTP func() (string, error)
}

func NewSessionService(
	accounts domain.AccountLookup,
	tokens TokenIssuer,
	challenges *ChallengeCache,
	notifier domain.Notifier,
	label string,
	withRole bool,
	otpTTL time.Duration,
) *SessionService {
	return &SessionService{
		accounts:    accounts,
		tokens:      tokens,
		challenges:  challenges,
		notifier:    notifier,
		label:       label,
		withRole:    withRole,
		otpTTL:      otpTTL,
		generateOTP: GenerateOTP,
	}
}

// SignIn verifies the credentials, mails a fresh OTP and caches it under the
// account email. The challenge is cached only after delivery succeeds, so
// "OTP sent" is never claimed for a code nobody received. Unknown email and
// wrong password produce the same generic failure.
func (s *SessionService) SignIn(ctx context.Context, email, password string) error {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return apperr.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.AccountPasswordHash()), []byte(password)) != nil {
		return apperr.ErrInvalidCredentials
	}

	otp, err := s.generateOTP()
	if err != nil {
		return err
	}

	if err := s.notifier.Send(ctx, account.AccountEmail(), otpMailSubject, otp); err != nil {
		logs.Logger.WithError(err).WithField("email", account.AccountEmail()).Error("otp delivery failed")
		return apperr.ErrMailDelivery
	}

	s.challenges.Put(account.AccountEmail(), otp, s.otpTTL)

	return nil
}

// ConfirmSignIn exchanges a live challenge for a token pair. The challenge is
// consumed on the first successful match, so a code cannot be replayed within
// its remaining TTL.
func (s *SessionService) ConfirmSignIn(ctx context.Context, email, otp string) (domain.AccountRecord, *TokenPair, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, apperr.NotFound(s.label + " not found")
	}

	if !s.challenges.Consume(account.AccountEmail(), otp) {
		return nil, nil, apperr.ErrOTPExpired
	}

	pair, err := s.IssueTokens(account)
	if err != nil {
		return nil, nil, err
	}

	return account, pair, nil
}

// IssueTokens mints the access+refresh pair for an already-authenticated
// account. Client sign-up uses it directly, skipping the OTP step.
func (s *SessionService) IssueTokens(account domain.AccountRecord) (*TokenPair, error) {
	role := ""
	if s.withRole {
		role = account.AccountRole()
	}

	accessToken, err := s.tokens.IssueAccess(account.AccountID(), role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefresh(account.AccountID())
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh verifies the cookie-held refresh token and mints a new access
// token. The refresh token itself is not rotated.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	account, err := s.accountFromRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	accessToken, err := s.tokens.IssueAccess(account.AccountID(), "")
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return accessToken, nil
}

// Logout runs the same validation path as Refresh; the handler clears the
// cookie afterwards. Tokens stay valid until natural expiry — there is no
// server-side revocation.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	_, err := s.accountFromRefreshToken(ctx, refreshToken)
	return err
}

func (s *SessionService) accountFromRefreshToken(ctx context.Context, refreshToken string) (domain.AccountRecord, error) {
	if refreshToken == "" {
		return nil, apperr.ErrRefreshExpired
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}

	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperr.NotFound(s.label + " not found")
	}

	return account, nil
}
