package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/domain/user"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub uint, role string) Claims {
	now := time.Now()
	return Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(sub), 10),
			Issuer:    "idp",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := NewJWTVerifier(testSecret, "idp")

	identity, err := verifier.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(42, "STAFF")))
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, user.RoleStaff, identity.Role)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier := NewJWTVerifier(testSecret, "idp")

	expired := validClaims(42, "STAFF")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims(42, "STAFF")
	noExpiry.ExpiresAt = nil

	otherIssuer := validClaims(42, "STAFF")
	otherIssuer.Issuer = "elsewhere"

	badSubject := validClaims(42, "STAFF")
	badSubject.Subject = "abc"

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims(42, "STAFF"))},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(42, "STAFF"))},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"no expiry", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"other issuer", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer)},
		{"non numeric subject", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), badSubject)},
		{"unknown role", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(42, "JANITOR"))},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTVerifier_IssuerOptional(t *testing.T) {
	verifier := NewJWTVerifier(testSecret, "")
	claims := validClaims(7, "RESIDENT")
	claims.Issuer = ""

	identity, err := verifier.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
	require.NoError(t, err)
	assert.Equal(t, user.RoleResident, identity.Role)
}
