package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

// Claims is the access token payload issued by the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

// Verifier validates HS256 bearer tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
	}, nil
}

func (v *Verifier) VerifyAccessToken(ctx context.Context, accessToken string) (user.Principal, error) {
	if err := ctx.Err(); err != nil {
		return user.Principal{}, err
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return user.Principal{}, fmt.Errorf("%w: empty access token", usecase.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %s", usecase.ErrUnauthorized, describe(err))
	}
	if !token.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized)
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return user.Principal{}, fmt.Errorf("%w: token subject is empty", usecase.ErrUnauthorized)
	}

	role := user.Role(strings.ToLower(strings.TrimSpace(claims.Role)))
	if role == "" {
		role = user.RoleUser
	}
	if !role.Valid() {
		return user.Principal{}, fmt.Errorf("%w: unknown role %q", usecase.ErrUnauthorized, claims.Role)
	}

	return user.Principal{
		UserID: subject,
		Email:  strings.TrimSpace(claims.Email),
		Role:   role,
	}, nil
}

// Sign issues a token for claims. Used by local tooling and tests.
func (v *Verifier) Sign(claims Claims) (string, error) {
	if claims.Issuer == "" {
		claims.Issuer = v.issuer
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid token signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "invalid token issuer"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return "invalid token"
	}
}
