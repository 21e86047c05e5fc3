// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openshelf authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/utils"
	"github.com/openshelf/catalog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is normalized exactly once at flow entry (trim + lower-case);
// both the duplicate lookup and the stored record use the normalized form.
// The password is bcrypt-hashed before it touches the repository; the
// plaintext is never stored or logged.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrEmailAndPasswordRequired if either credential field is empty.
//   - ErrInvalidEmail if the email fails the structural check.
//   - store.ErrEmailAlreadyExists if the email is already registered.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		return models.User{}, ErrEmailAndPasswordRequired
	}

	email := normalizeEmail(req.Email)
	if !validEmail(email) {
		log.Warn().Msg("registration rejected: malformed email")
		return models.User{}, ErrInvalidEmail
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Warn().Msg("registration rejected: email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("duplicate-email lookup failed")
		return models.User{}, fmt.Errorf("duplicate-email lookup failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		Forenames:    req.Forenames,
		Surname:      req.Surname,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The stored bcrypt hash is compared against the supplied password. An
// unknown email and a wrong password both return ErrInvalidCredentials so
// the response does not reveal whether the account exists.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrEmailAndPasswordRequired
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Msg("login rejected: unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(password, foundUser.PasswordHash) {
		log.Warn().Str("user_id", foundUser.ID).Msg("login rejected: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the user id as "sub", the
// user's role as "role", and expires after tokenDuration.
//
// Returns the token model on success or ErrTokenCreationFailed (wrapped) if
// JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// UserByID resolves a token subject to the account it belongs to. The
// returned record carries the role as currently stored, which is what the
// authorization checks trust; the token's role claim is informational only.
func (a *authService) UserByID(ctx context.Context, id string) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, id)
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the expiry. Expiry is surfaced as ErrTokenIsExpired;
// every other validation failure is normalised to ErrTokenIsInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
