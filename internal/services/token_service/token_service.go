package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dinas_portal/internal/domain/models"
	"dinas_portal/internal/lib/jwt"
	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/repository"
)

var (
	ErrInvalidToken = jwt.ErrInvalidToken
	ErrTokenRevoked = errors.New("token revoked")
)

type TokenService struct {
	log    *slog.Logger
	repo   repository.TokenRepository
	secret string
	ttl    time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		log:    log,
		repo:   repo,
		secret: secret,
		ttl:    ttl,
	}
}

func (s *TokenService) IssueToken(user models.User) (models.Token, error) {
	const op = "token_service.IssueToken"

	token, _, err := jwt.NewToken(user, s.ttl, s.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

// ParseToken validates the token and rejects it once it has been revoked.
func (s *TokenService) ParseToken(ctx context.Context, token string) (models.TokenClaims, error) {
	const op = "token_service.ParseToken"

	claims, err := jwt.Parse(token, s.secret)
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.CheckRevoked(ctx, claims); err != nil {
		return models.TokenClaims{}, fmt.Errorf("%s: %w", op, err)
	}

	return claims, nil
}

func (s *TokenService) CheckRevoked(ctx context.Context, claims models.TokenClaims) error {
	const op = "token_service.CheckRevoked"

	revoked, err := s.repo.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.Error("failed to check revocation", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return ErrTokenRevoked
	}

	return nil
}

// RevokeToken blacklists the token id until the token would have expired anyway.
func (s *TokenService) RevokeToken(ctx context.Context, claims models.TokenClaims) error {
	const op = "token_service.RevokeToken"
	log := s.log.With(slog.String("op", op), slog.String("jti", claims.ID))

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.repo.RevokeToken(ctx, claims.ID, ttl); err != nil {
		log.Error("failed to revoke token", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("token revoked", slog.Duration("ttl", ttl))

	return nil
}
