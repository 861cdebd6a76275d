package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"realtors/internal/config"
	"realtors/pkg/domain"
	"realtors/pkg/logger"
	"realtors/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

// IdentityKey is the context key under which the authenticated caller's
// *domain.Identity is stored.
const IdentityKey contextKey = "identity"

// TokenCookie is read when a request carries no Authorization header, so
// browser clients can authenticate without scripting.
const TokenCookie = "access_token"

// Claims are the token claims asserted by the identity provider.
type Claims struct {
	jwt.RegisteredClaims

	Name  string   `json:"name,omitempty"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
	// Issuer, when set, must match the iss claim.
	Issuer string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
		Issuer:    cfg.JWT.Issuer,
	}
}

// SecHandler turns bearer tokens into caller identities.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "parse jwt public key")
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}

	return &SecHandler{
		publicKey: key,
		parser:    jwt.NewParser(parserOpts...),
	}, nil
}

// Authenticate verifies the token and returns a context carrying the caller.
func (s SecHandler) Authenticate(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	identity := &domain.Identity{
		ID:    userID,
		Name:  claims.Name,
		Email: claims.Email,
		Roles: make([]domain.Role, 0, len(claims.Roles)),
	}
	for _, role := range claims.Roles {
		identity.Roles = append(identity.Roles, domain.Role(role))
	}

	ctx = context.WithValue(ctx, IdentityKey, identity)
	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()))

	return ctx, nil
}

// Middleware authenticates requests that carry a token. Requests without one
// pass through anonymously; requests with a bad one are rejected via onError.
func (s SecHandler) Middleware(onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)

				return
			}

			ctx, err := s.Authenticate(r.Context(), token)
			if err != nil {
				onError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if c, err := r.Cookie(TokenCookie); err == nil {
		return c.Value
	}

	return ""
}

// IdentityFromContext returns the authenticated caller, or nil when the
// request is anonymous.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(IdentityKey).(*domain.Identity)

	return identity
}
