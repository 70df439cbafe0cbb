package auth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"taskboard/internal/model"
)

func TestTokenService_GenerateAndDecode(t *testing.T) {
	svc := NewTokenService("test-secret", 7)

	user := &model.User{
		ID:        42,
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      model.RoleAdmin,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	token, err := svc.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Decode(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.True(t, user.CreatedAt.Equal(claims.CreatedAt))
	assert.NotEmpty(t, claims.ID, "token id should be set")
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	days := 7
	svc := NewTokenService("test-secret", days)

	token, err := svc.Generate(&model.User{ID: 1, Email: "a@b.c"})
	assert.NoError(t, err)

	claims, err := svc.Decode(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)

	window := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Duration(days)*24*time.Hour, window)
}

func TestTokenService_Decode_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", 7)
	verifier := NewTokenService("secret-two", 7)

	token, err := issuer.Generate(&model.User{ID: 1, Email: "a@b.c"})
	assert.NoError(t, err)

	claims, err := verifier.Decode(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Decode_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret", 7)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := svc.Decode(raw)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenService_Decode_RejectsUnsignedToken(t *testing.T) {
	svc := NewTokenService("test-secret", 7)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	claims, err := svc.Decode(raw)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Decode only verifies the signature; expiry is the middleware's call, so a
// stale token still yields readable claims.
func TestTokenService_Decode_ToleratesExpired(t *testing.T) {
	svc := NewTokenService("test-secret", 7)

	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 9,
		Email:  "old@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
	})
	raw, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	claims, err := svc.Decode(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	assert.True(t, claims.ExpiresAt.Before(now))
}

func TestClaims_JSONFieldNames(t *testing.T) {
	claims := &Claims{UserID: 7, Name: "Bob", Email: "bob@example.com", Role: model.RoleEditor}

	payload, err := json.Marshal(claims)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, float64(7), decoded["id"])
	assert.Equal(t, "bob@example.com", decoded["email"])
	assert.Equal(t, model.RoleEditor, decoded["role"])
}
