package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(4)

	first, err := h.Hash("s3cret")
	require.NoError(t, err)
	second, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", first)
	assert.NotEqual(t, first, second, "fresh salt per call")
	assert.True(t, h.Verify("s3cret", first))
	assert.True(t, h.Verify("s3cret", second))
	assert.False(t, h.Verify("s3cret!", first))
	assert.False(t, h.Verify("", first))
	assert.False(t, h.Verify("s3cret", "not-a-bcrypt-hash"))
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	assert.Equal(t, DefaultBcryptCost, NewPasswordHasher(0).cost)
	assert.Equal(t, DefaultBcryptCost, NewPasswordHasher(99).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Minute, nil)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)

	userID, ok := svc.VerifyToken(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("test-secret", 0, nil)

	token, err := svc.IssueToken(1)
	require.NoError(t, err)
	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	svc := NewTokenService("test-secret", time.Minute, nil)

	expired, err := NewTokenService("test-secret", -time.Minute, nil).IssueToken(7)
	require.NoError(t, err)
	foreign, err := NewTokenService("other-secret", time.Minute, nil).IssueToken(7)
	require.NoError(t, err)
	valid, err := svc.IssueToken(7)
	require.NoError(t, err)
	tampered := valid[:strings.LastIndex(valid, ".")] + ".AAAA"

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "bad signature", token: foreign},
		{name: "tampered", token: tampered},
		{name: "malformed", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "alg none", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := svc.VerifyToken(tt.token)
			assert.False(t, ok)
			assert.Zero(t, userID)
		})
	}
}
