package webhook

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aleister1102/discordhook/internal/discord"
	"github.com/aleister1102/discordhook/internal/errorwrapper"
	"github.com/aleister1102/discordhook/internal/httpclient"
	"github.com/rs/zerolog"
)

// WebhookURLPrefix is the scheme every Discord webhook endpoint starts with.
const WebhookURLPrefix = "https://discord.com/api/webhooks/"

// DefaultTimeout bounds a send when the configuration does not set one.
const DefaultTimeout = 10 * time.Second

// ClientConfig holds the identity a client sends with.
type ClientConfig struct {
	WebhookURL string        // Discord webhook endpoint, required
	Username   string        // Optional display-name override
	AvatarURL  string        // Optional avatar override
	Timeout    time.Duration // Per-send deadline, DefaultTimeout when zero
}

// Client posts messages to a single Discord webhook endpoint. Configuration
// is immutable after construction, so one client may be shared across
// goroutines; each send owns its own request lifecycle.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a webhook client. It fails with a ConfigurationError
// when the endpoint is empty or does not look like a Discord webhook URL.
func NewClient(config ClientConfig, logger zerolog.Logger) (*Client, error) {
	if config.WebhookURL == "" {
		return nil, errorwrapper.NewConfigurationError("webhook_url", config.WebhookURL, "webhook URL is required")
	}
	if !strings.HasPrefix(config.WebhookURL, WebhookURLPrefix) {
		return nil, errorwrapper.NewConfigurationError("webhook_url", config.WebhookURL, "webhook URL must start with "+WebhookURLPrefix)
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	clientLogger := logger.With().Str("component", "WebhookClient").Logger()

	return &Client{
		config:     config,
		httpClient: httpclient.NewDiscordClient(clientLogger),
		logger:     clientLogger,
	}, nil
}

// NewEmbed returns a fresh embed builder, independent of any prior builder
// or dispatch state.
func (c *Client) NewEmbed() *discord.EmbedBuilder {
	return discord.NewEmbedBuilder()
}

// Send dispatches a payload carrying free-text content and any pre-built
// embeds. Embeds are forwarded as-is without local validation.
func (c *Client) Send(ctx context.Context, content string, embeds ...discord.Embed) error {
	payload := discord.NewWebhookPayloadBuilder().
		WithContent(content).
		WithUsername(c.config.Username).
		WithAvatarURL(c.config.AvatarURL).
		AddEmbeds(embeds).
		Build()

	return c.dispatch(ctx, payload)
}

// StatusOptions carries the optional parts of a status notification. Zero
// values are omitted from the embed entirely.
type StatusOptions struct {
	Description string
	Fields      []discord.EmbedField
	ImageURL    string
}

// SendStatus dispatches a single embed colored by status and stamped with
// the current instant. Description, fields, and image appear in the embed
// only when supplied.
func (c *Client) SendStatus(ctx context.Context, status discord.Status, title string, opts StatusOptions) error {
	builder := discord.NewEmbedBuilder().
		WithTitle(title).
		WithStatusColor(status).
		WithCurrentTimestamp()

	if opts.Description != "" {
		builder.WithDescription(opts.Description)
	}
	if len(opts.Fields) > 0 {
		builder.AddFields(opts.Fields)
	}
	if opts.ImageURL != "" {
		builder.WithImage(opts.ImageURL)
	}

	payload := discord.NewWebhookPayloadBuilder().
		WithUsername(c.config.Username).
		WithAvatarURL(c.config.AvatarURL).
		AddEmbed(builder.Build()).
		Build()

	return c.dispatch(ctx, payload)
}

// SendEmbeds dispatches pre-built embeds as-is, in order. It fails with a
// ValidationError before any network attempt when the sequence is empty or
// exceeds the Discord per-message maximum.
func (c *Client) SendEmbeds(ctx context.Context, embeds []discord.Embed) error {
	if len(embeds) == 0 {
		return errorwrapper.NewValidationError("embeds", len(embeds), "at least one embed required")
	}
	if len(embeds) > discord.MaxEmbedsPerMessage {
		return errorwrapper.NewValidationError("embeds", len(embeds), "maximum 10 embeds per message")
	}

	payload := discord.NewWebhookPayloadBuilder().
		WithUsername(c.config.Username).
		WithAvatarURL(c.config.AvatarURL).
		AddEmbeds(embeds).
		Build()

	return c.dispatch(ctx, payload)
}
