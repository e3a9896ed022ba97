package core

import (
	"context"
	"errors"
	"fmt"
	"usdcdash/internal/repository"
	tokenIssuer "usdcdash/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenLifetime is the validity of an operator token, in hours.
const TokenLifetime = 24

// Authenticator issues and checks operator tokens guarding transfer submission.
type Authenticator struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

// NewAuthenticator is a constructor function for the Authenticator type.
func NewAuthenticator(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Authenticator {
	return &Authenticator{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Authenticate checks the provided username and password against the stored operators. If the credentials are valid, it generates a JWT token for the operator.
func (a *Authenticator) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	operator, err := a.repo.GetOperator(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get operator: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   operator.Username,
		Subject:    operator.ID,
		Expiration: TokenLifetime,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("operator authenticated", "username", operator.Username)
	return signed, nil
}

// Authorize validates token and returns the operator id it was issued to.
func (a *Authenticator) Authorize(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: missing token", ErrUnauthorized)
	}

	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}

	return subject, nil
}
