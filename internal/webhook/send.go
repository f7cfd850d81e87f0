package webhook

import (
	"context"

	"github.com/aleister1102/discordhook/internal/discord"
	"github.com/rs/zerolog"
)

// Send constructs a transient client from the config and dispatches one
// message. Convenience for callers that do not keep a client around.
func Send(ctx context.Context, config ClientConfig, content string, embeds ...discord.Embed) error {
	client, err := NewClient(config, zerolog.Nop())
	if err != nil {
		return err
	}
	return client.Send(ctx, content, embeds...)
}

// SendStatus constructs a transient client from the config and dispatches
// one status embed.
func SendStatus(ctx context.Context, config ClientConfig, status discord.Status, title string, opts StatusOptions) error {
	client, err := NewClient(config, zerolog.Nop())
	if err != nil {
		return err
	}
	return client.SendStatus(ctx, status, title, opts)
}
