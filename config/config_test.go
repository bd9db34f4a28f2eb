package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelOrder(t *testing.T) {
	c := Config{GeminiModels: " gemini-2.0-flash, ,gemini-1.5-flash,gemini-2.0-flash "}
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-flash"}, c.ModelOrder())

	c = Config{}
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-flash", "gemini-1.5-pro"}, c.ModelOrder())
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, Config{}.AllowedOrigins())
	assert.Equal(t, []string{"https://staynest.app", "http://localhost:5173"},
		Config{CORSOrigins: "https://staynest.app, http://localhost:5173"}.AllowedOrigins())
}

func TestTrustedProxyList(t *testing.T) {
	assert.Empty(t, Config{}.TrustedProxyList())
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"},
		Config{TrustedProxies: " 10.0.0.0/8, ,127.0.0.1"}.TrustedProxyList())
}
