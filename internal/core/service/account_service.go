package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/neobank/neobank/internal/core/domain"
	"github.com/neobank/neobank/internal/core/ports"
)

// AccountService implements registration, login, and profile lookup for the
// dev backend. Register and Login issue a signed session token; Profile only
// answers for tokens still present in the token store.
type AccountService struct {
	repo        ports.AccountRepository
	tokens      ports.TokenStore
	jwtSecret   string
	tokenTTL    time.Duration
	signupBonus float64
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenStore, jwtSecret string, tokenTTL time.Duration, signupBonus float64) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{
		repo:        repo,
		tokens:      tokens,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		signupBonus: signupBonus,
	}
}

func (s *AccountService) Register(ctx context.Context, username, pass string) (*domain.Account, string, error) {
	if username == "" || pass == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Balance:      s.signupBonus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *AccountService) Login(ctx context.Context, username, pass string) (*domain.Account, string, error) {
	if username == "" || pass == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(pass)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (s *AccountService) Profile(ctx context.Context, tokenID, subjectID, requestedID string) (*domain.Account, error) {
	owner, err := s.tokens.UserID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if owner != subjectID || owner != requestedID {
		return nil, domain.ErrSessionRejected
	}
	return s.repo.FindByID(ctx, requestedID)
}

// issueSession registers a fresh token ID in the token store and returns the
// signed cookie value carrying it.
func (s *AccountService) issueSession(ctx context.Context, userID string) (string, error) {
	tokenID, err := newTokenID()
	if err != nil {
		return "", err
	}
	if err := s.tokens.Put(ctx, tokenID, userID, s.tokenTTL); err != nil {
		return "", fmt.Errorf("store session token: %w", err)
	}

	claims := jwt.MapClaims{
		"sub": userID,
		"jti": tokenID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func newTokenID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
