package vrpay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intpay/vrpay-go/model"
)

func validConfig() Config {
	return Config{
		BaseURL:       TestBaseURL,
		EntityID:      "8a8294174e735d0c014e78beb6b9154b",
		AccessToken:   "Bearer OGE4Mjk0MTc0ZTczNWQwYw==",
		UseTestMode:   true,
		TestModeValue: model.TestModeExternal,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		reason string
	}{
		{"missing base URL", func(c *Config) { c.BaseURL = "" }, "base URL is required"},
		{"blank base URL", func(c *Config) { c.BaseURL = "   " }, "base URL is required"},
		{"relative base URL", func(c *Config) { c.BaseURL = "not-a-url" }, "base URL must be a valid absolute URL"},
		{"missing entity ID", func(c *Config) { c.EntityID = "" }, "entity ID is required"},
		{"missing access token", func(c *Config) { c.AccessToken = " " }, "access token is required"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout must be greater than 0"},
		{"invalid test mode", func(c *Config) { c.TestModeValue = "SANDBOX" }, "test mode value must be EXTERNAL or INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var confErr *ConfigurationError
			require.ErrorAs(t, err, &confErr)
			assert.Equal(t, tt.reason, confErr.Reason)
		})
	}
}

func TestConfig_ValidateAccepts(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.UseTestMode = false
	cfg.TestModeValue = ""
	assert.NoError(t, cfg.Validate(), "test mode value is only checked when test mode is on")
}

func TestNew_InvalidConfigFailsConstruction(t *testing.T) {
	cfg := validConfig()
	cfg.EntityID = ""

	client, err := New(cfg)
	assert.Nil(t, client)

	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestNew_DefaultTimeout(t *testing.T) {
	client, err := New(validConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestNew_ExplicitTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Timeout = 5 * time.Second

	client, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}
