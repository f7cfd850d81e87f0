package discord

// WebhookPayloadBuilder helps in constructing WebhookPayload objects.
type WebhookPayloadBuilder struct {
	payload WebhookPayload
}

// NewWebhookPayloadBuilder creates a new instance of WebhookPayloadBuilder.
func NewWebhookPayloadBuilder() *WebhookPayloadBuilder {
	return &WebhookPayloadBuilder{
		payload: WebhookPayload{},
	}
}

// WithContent sets the Content for the WebhookPayload.
func (b *WebhookPayloadBuilder) WithContent(content string) *WebhookPayloadBuilder {
	b.payload.Content = content
	return b
}

// WithUsername sets the Username for the WebhookPayload.
func (b *WebhookPayloadBuilder) WithUsername(username string) *WebhookPayloadBuilder {
	b.payload.Username = username
	return b
}

// WithAvatarURL sets the AvatarURL for the WebhookPayload.
func (b *WebhookPayloadBuilder) WithAvatarURL(avatarURL string) *WebhookPayloadBuilder {
	b.payload.AvatarURL = avatarURL
	return b
}

// AddEmbed adds an Embed to the WebhookPayload.
func (b *WebhookPayloadBuilder) AddEmbed(embed Embed) *WebhookPayloadBuilder {
	b.payload.Embeds = append(b.payload.Embeds, embed)
	return b
}

// AddEmbeds adds embeds to the WebhookPayload in the given order.
func (b *WebhookPayloadBuilder) AddEmbeds(embeds []Embed) *WebhookPayloadBuilder {
	b.payload.Embeds = append(b.payload.Embeds, embeds...)
	return b
}

// Build returns the constructed WebhookPayload object.
func (b *WebhookPayloadBuilder) Build() WebhookPayload {
	return b.payload
}
