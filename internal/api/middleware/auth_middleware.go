package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}
}

// Authenticate verifies the bearer token and stores its claims in the request
// context under UserContextKey.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, appErrors.UnauthorizedError("Authorization header is required"))
			return
		}

		raw, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.ContainsRune(raw, ' ') {
			logger.Warn("Invalid authorization header format")
			response.Error(w, appErrors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.Claims{}
		if _, err := m.parser.ParseWithClaims(raw, claims, m.key); err != nil {
			logger.Warn("JWT verification failed", slog.Any("error", err))
			response.Error(w, appErrors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if claims.UserID == uuid.Nil {
			logger.Warn("JWT carries no user id")
			response.Error(w, appErrors.UnauthorizedError("Invalid token"))
			return
		}

		scoped := logger.With(slog.String("userId", claims.UserID.String()))

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		ctx = context.WithValue(ctx, LoggerKey, scoped)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) key(*jwt.Token) (any, error) {
	return m.jwtKey, nil
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	if !ok || claims == nil {
		return nil, false
	}

	return claims, true
}
