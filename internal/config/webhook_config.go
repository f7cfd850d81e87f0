package config

// WebhookConfig defines the identity used for outgoing notifications.
type WebhookConfig struct {
	WebhookURL     string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty" validate:"omitempty,discordwebhook"`
	Username       string `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=0"`
}

// NewDefaultWebhookConfig creates default webhook configuration
func NewDefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{
		WebhookURL:     "",
		Username:       "",
		AvatarURL:      "",
		TimeoutSeconds: DefaultWebhookTimeoutSecs,
	}
}
