package httpclient

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Defaults(t *testing.T) {
	client := NewBuilder(zerolog.Nop()).Build()

	require.NotNil(t, client)
	assert.Equal(t, time.Duration(0), client.Timeout)
	assert.NotNil(t, client.CheckRedirect)
}

func TestBuilder_WithTimeout(t *testing.T) {
	client := NewBuilder(zerolog.Nop()).
		WithTimeout(5 * time.Second).
		Build()

	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestBuilder_NoRedirects(t *testing.T) {
	client := NewBuilder(zerolog.Nop()).
		WithFollowRedirects(false).
		Build()

	assert.NotNil(t, client.CheckRedirect)
}

func TestNewDiscordClient(t *testing.T) {
	client := NewDiscordClient(zerolog.Nop())

	require.NotNil(t, client)
	// Per-request deadlines come from the context, not a client-wide timeout
	assert.Equal(t, time.Duration(0), client.Timeout)
}
