package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExist          = errors.New("user already exist")
)

type Auth struct {
	log         *slog.Logger
	usrSaver    UserSaver
	usrProvider UserProvider
	tokens      TokenIssuer
}

type UserSaver interface {
	SaveUser(ctx context.Context, user models.User) error
}

type UserProvider interface {
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

type TokenIssuer interface {
	IssueToken(user models.User) (models.Token, error)
}

func New(log *slog.Logger, userSaver UserSaver, userProvider UserProvider, tokens TokenIssuer) *Auth {
	return &Auth{
		log:         log,
		usrSaver:    userSaver,
		usrProvider: userProvider,
		tokens:      tokens,
	}
}

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords are reported the same way.
func (a *Auth) Login(ctx context.Context, username, password string) (models.Token, models.User, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to login user")

	user, err := a.usrProvider.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))

			return models.Token{}, models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))

		return models.Token{}, models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.Token{}, models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := a.tokens.IssueToken(user)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return models.Token{}, models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in successfully")

	return token, user, nil
}

// RegisterUser hashes the password and stores a new back-office account.
func (a *Auth) RegisterUser(ctx context.Context, username, email, password string, role models.Role) (models.User, error) {
	const op = "auth.RegisterUser"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	if !role.Valid() {
		return models.User{}, models.NewValidationError("role", "Role tidak valid")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.usrSaver.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exist", sl.Err(err))

			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserExist)
		}
		log.Error("failed to save user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered")

	return user, nil
}

// EnsureAdmin creates the configured super admin on first start. An existing
// account is left untouched.
func (a *Auth) EnsureAdmin(ctx context.Context, username, email, password string) error {
	const op = "auth.EnsureAdmin"

	if username == "" || password == "" {
		return nil
	}

	_, err := a.usrProvider.UserByUsername(ctx, username)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, storage.ErrUserNotFound):
		return fmt.Errorf("%s: %w", op, err)
	}

	if email == "" {
		email = username + "@localhost"
	}

	if _, err := a.RegisterUser(ctx, username, email, password, models.RoleSuperAdmin); err != nil {
		if errors.Is(err, ErrUserExist) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("admin account seeded", slog.String("username", username))

	return nil
}
