package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseUserJWT(t *testing.T) {
	key := []byte("secret")

	tokenStr, genErr := GenerateUserJWT(42, "bob", "AAA111", time.Hour, key)
	require.NoError(t, genErr)
	require.NotEmpty(t, tokenStr)

	claims, parseErr := ParseUserJWT(tokenStr, key)
	require.NoError(t, parseErr)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, "AAA111", claims.ReferralCode)
}

func TestParseUserJWTWrongKey(t *testing.T) {
	tokenStr, genErr := GenerateUserJWT(1, "bob", "AAA111", time.Hour, []byte("key one"))
	require.NoError(t, genErr)

	_, parseErr := ParseUserJWT(tokenStr, []byte("key two"))
	require.Error(t, parseErr)
}

func TestParseUserJWTExpired(t *testing.T) {
	key := []byte("secret")

	tokenStr, genErr := GenerateUserJWT(1, "bob", "AAA111", -time.Minute, key)
	require.NoError(t, genErr)

	_, parseErr := ParseUserJWT(tokenStr, key)
	require.ErrorIs(t, parseErr, ErrTokenExpired)
}

func TestParseUserJWTGarbage(t *testing.T) {
	_, parseErr := ParseUserJWT("not a token", []byte("secret"))
	require.Error(t, parseErr)
}
