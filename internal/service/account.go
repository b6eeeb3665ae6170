package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"teamflow-backend/internal/auth"
	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/synckey"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles registration, login and scope switching
type AccountService struct {
	repo      repository.AccountRepositoryInterface
	issuer    *auth.TokenIssuer
	validator *validator.Validate
}

// Ensure AccountService implements AccountServiceInterface
var _ AccountServiceInterface = (*AccountService)(nil)

// NewAccountService creates a new AccountService
func NewAccountService(repo repository.AccountRepositoryInterface, issuer *auth.TokenIssuer, validator *validator.Validate) *AccountService {
	return &AccountService{
		repo:      repo,
		issuer:    issuer,
		validator: validator,
	}
}

// RegisterRequest represents the payload for creating an account
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	DisplayName string `json:"display_name" validate:"max=200"`
}

// LoginRequest represents the payload for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SwitchScopeRequest represents the payload for joining a shared team scope
type SwitchScopeRequest struct {
	SyncKey string `json:"syncKey" validate:"required"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	ScopeKey    string `json:"scope_key"`
	CreatedAt   int64  `json:"created_at"`
}

// SessionResponse represents a signed-in session
type SessionResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	Account     AccountResponse `json:"account"`
}

// Register validates, hashes the password and creates a new account. The
// account starts on its personal scope derived from the email address.
func (s *AccountService) Register(req *RegisterRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.repo.CheckEmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAccountAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password, auth.DefaultArgon2idParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		ScopeKey:     synckey.AccountScope(email),
	}
	if err := s.repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.newSession(account)
}

// Login verifies credentials and issues a session token
func (s *AccountService) Login(req *LoginRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	account, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := auth.VerifyPassword(account.PasswordHash, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.newSession(account)
}

// SwitchScope points the account at a shared team key, or back at the
// personal scope when the key equals it.
func (s *AccountService) SwitchScope(accountID uuid.UUID, req *SwitchScopeRequest) (*AccountResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	account, err := s.repo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	key := synckey.Normalize(req.SyncKey)
	if !synckey.Valid(key) {
		if !synckey.ValidAccountScope(req.SyncKey) {
			return nil, &apperrors.ValidationError{Field: "syncKey", Message: "must be a TF-XXXXXX-XXXX team key or a personal scope key"}
		}
		key = strings.TrimSpace(req.SyncKey)
	}

	if err := s.repo.UpdateScopeKey(account.ID, key); err != nil {
		return nil, fmt.Errorf("failed to update scope: %w", err)
	}
	account.ScopeKey = key

	res := toAccountResponse(account)
	return &res, nil
}

func (s *AccountService) newSession(account *models.Account) (*SessionResponse, error) {
	token, err := s.issuer.GenerateJWT(account.ID, account.Email, account.ScopeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &SessionResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Account:     toAccountResponse(account),
	}, nil
}

func toAccountResponse(account *models.Account) AccountResponse {
	var created int64
	if !account.CreatedAt.IsZero() {
		created = account.CreatedAt.UnixMilli()
	} else {
		created = time.Now().UnixMilli()
	}
	return AccountResponse{
		ID:          account.ID.String(),
		Email:       account.Email,
		DisplayName: account.DisplayName,
		ScopeKey:    account.ScopeKey,
		CreatedAt:   created,
	}
}
