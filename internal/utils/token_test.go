package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mds03339-alt/Update-Feed-Inventory/config"
)

// Token helpers read the global config; give them one without touching
// the environment.
func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{}
	os.Exit(m.Run())
}

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig.Server.JWTSecret = "test-secret"
	config.AppConfig.Server.JWTExpirationHours = 1

	token, err := GenerateToken("owner@shop", "owner")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@shop", claims.Email)
	assert.Equal(t, "owner", claims.Role)
}

func TestValidateToken_RejectsTampering(t *testing.T) {
	config.AppConfig.Server.JWTSecret = "test-secret"

	token, err := GenerateToken("staff@shop", "staff")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	config.AppConfig.Server.JWTSecret = "rotated-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)

	config.AppConfig.Server.JWTSecret = "test-secret"
	_, err = ValidateToken(token)
	assert.NoError(t, err)
}
