package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental/config"
	"rental/infras/jwt"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "rental"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("renter@example.com", "renter")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "renter@example.com", claims.Email)
	assert.Equal(t, "renter", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(pair.AccessToken+"x", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("agent@example.com", "agent")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, "agent", claims.Role)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = -1
	cfg.JWT.RefreshExpireMin = 1

	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair("renter@example.com", "renter")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		token     string
		expectErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", token: "abc.def.ghi"},
		{name: "empty header", header: "", expectErr: true},
		{name: "wrong scheme", header: "Basic dXNlcg==", expectErr: true},
		{name: "prefix only", header: "Bearer ", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.expectErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.token, token)
		})
	}
}
