package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/foodgram/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func runWithAuth(validator TokenValidator, optional bool, header string) (*httptest.ResponseRecorder, uint) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	mw := AuthMiddleware(validator)
	if optional {
		mw = OptionalAuth(validator)
	}

	var seenID uint
	engine.GET("/probe", mw, func(c *gin.Context) {
		seenID = UserID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w, seenID
}

func TestAuthMiddleware(t *testing.T) {
	valid := &stubValidator{claims: &types.TokenClaims{UserID: 42, Username: "alice"}}
	invalid := &stubValidator{err: errors.New("bad token")}

	t.Run("valid token", func(t *testing.T) {
		w, id := runWithAuth(valid, false, "Bearer token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), id)
	})

	t.Run("missing header", func(t *testing.T) {
		w, _ := runWithAuth(valid, false, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w, _ := runWithAuth(valid, false, "token-without-scheme")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		w, _ := runWithAuth(invalid, false, "Bearer token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	valid := &stubValidator{claims: &types.TokenClaims{UserID: 42, Username: "alice"}}
	invalid := &stubValidator{err: errors.New("bad token")}

	t.Run("anonymous passes", func(t *testing.T) {
		w, id := runWithAuth(valid, true, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, id)
	})

	t.Run("valid token resolves identity", func(t *testing.T) {
		w, id := runWithAuth(valid, true, "Bearer token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), id)
	})

	t.Run("bad token treated as anonymous", func(t *testing.T) {
		w, id := runWithAuth(invalid, true, "Bearer token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, id)
	})
}
