package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("marketplace-signing-key-32-bytes")

type tokenOpts struct {
	userID  uuid.UUID
	key     []byte
	method  jwt.SigningMethod
	expires *jwt.NumericDate
}

func sign(t *testing.T, o tokenOpts) string {
	t.Helper()

	if o.key == nil {
		o.key = signingKey
	}
	if o.method == nil {
		o.method = jwt.SigningMethodHS256
	}

	claims := &models.Claims{
		UserID:   o.userID,
		Username: "green_sam",
		FullName: "Sam Green",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: o.expires,
		},
	}

	token, err := jwt.NewWithClaims(o.method, claims).SignedString(o.key)
	require.NoError(t, err)

	return token
}

func TestAuthenticate(t *testing.T) {

	userID := uuid.New()
	inAnHour := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "Valid token",
			header:     "Bearer " + sign(t, tokenOpts{userID: userID, expires: inAnHour}),
			wantStatus: http.StatusNoContent,
		},
		{
			name:        "No header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization header is required",
		},
		{
			name:        "Wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization format",
		},
		{
			name:        "Extra segment",
			header:      "Bearer a b",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization format",
		},
		{
			name:        "Empty token",
			header:      "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "Garbage token",
			header:      "Bearer x.y.z",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "Foreign key",
			header:      "Bearer " + sign(t, tokenOpts{userID: userID, expires: inAnHour, key: []byte("someone-elses-key-0000000000000")}),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "HS512 rejected",
			header:      "Bearer " + sign(t, tokenOpts{userID: userID, expires: inAnHour, method: jwt.SigningMethodHS512}),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "Expired",
			header:      "Bearer " + sign(t, tokenOpts{userID: userID, expires: jwt.NewNumericDate(time.Now().Add(-time.Minute))}),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "No expiry",
			header:      "Bearer " + sign(t, tokenOpts{userID: userID}),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "Nil user",
			header:      "Bearer " + sign(t, tokenOpts{userID: uuid.Nil, expires: inAnHour}),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
	}

	auth := middleware.NewAuthMiddleware(signingKey)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true

				claims, ok := middleware.ClaimsFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, "green_sam", claims.Username)

				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			req = req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))

			rr := httptest.NewRecorder()
			auth.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantMessage == "", reached)

			if tc.wantMessage != "" {
				assert.JSONEq(t,
					`{"success":false,"error":{"code":"UNAUTHORIZED","message":"`+tc.wantMessage+`"}}`,
					rr.Body.String())
			}
		})
	}
}

func TestClaimsFromContext(t *testing.T) {
	_, ok := middleware.ClaimsFromContext(context.Background())
	assert.False(t, ok)

	claims := &models.Claims{UserID: uuid.New()}
	ctx := context.WithValue(context.Background(), middleware.UserContextKey, claims)

	got, ok := middleware.ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, claims, got)
}
