package webhook

import (
	"context"
	"testing"

	"github.com/aleister1102/discordhook/internal/discord"
	"github.com/aleister1102/discordhook/internal/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_OneShotInvalidConfig(t *testing.T) {
	err := Send(context.Background(), ClientConfig{WebhookURL: "https://example.com/hook"}, "hello")

	var configErr *errorwrapper.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func TestSendStatus_OneShotInvalidConfig(t *testing.T) {
	err := SendStatus(context.Background(), ClientConfig{}, discord.StatusInfo, "title", StatusOptions{})

	var configErr *errorwrapper.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "webhook_url", configErr.Field)
}
