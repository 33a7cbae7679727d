package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher produces and checks the stored password hashes.
	passwordHasher crypto.PasswordHasher

	validator   validators.Validator
	idGenerator IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: crypto.NewPasswordHasher(),
		validator:      validators.NewUserValidator(),
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account and its profile.
//
// The email is trimmed and lower-cased before validation. The password is
// replaced by its argon2id hash and never leaves this method.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided (wrapping the validator error) for a bad body.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	user.DisplayName = strings.TrimSpace(user.DisplayName)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid register data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.passwordHasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.ID = a.idGenerator.Generate()
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordHash = ""
	return registeredUser, nil
}

// Login authenticates an existing user by email and password and records
// the sign-in time.
//
// An unknown email and a wrong password both yield ErrWrongPassword so the
// response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	if err := a.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", user.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.passwordHasher.Compare(foundUser.PasswordHash, user.Password)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("stored password hash is malformed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		log.Warn().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	signedInAt, err := a.userRepository.TouchLastSignIn(ctx, foundUser.ID)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("updating last sign-in time failed")
		return models.User{}, fmt.Errorf("updating last sign-in time failed: %w", err)
	}

	foundUser.LastSignInAt = &signedInAt
	foundUser.PasswordHash = ""
	return foundUser, nil
}

// GetUser returns the account behind a verified token subject.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	foundUser.PasswordHash = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
