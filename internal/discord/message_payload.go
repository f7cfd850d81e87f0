package discord

// MaxEmbedsPerMessage is the maximum number of embeds Discord accepts in a
// single webhook message.
const MaxEmbedsPerMessage = 10

// WebhookPayload represents the JSON payload sent to a Discord webhook.
type WebhookPayload struct {
	Content   string  `json:"content,omitempty"`    // Message content (text)
	Username  string  `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL string  `json:"avatar_url,omitempty"` // Override the default webhook avatar
	Embeds    []Embed `json:"embeds,omitempty"`     // Array of embed objects
}
