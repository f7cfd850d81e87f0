package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aleister1102/discordhook/internal/config"
	"github.com/aleister1102/discordhook/internal/discord"
	"github.com/aleister1102/discordhook/internal/logger"
	"github.com/aleister1102/discordhook/internal/webhook"
	"github.com/rs/zerolog"
)

// fieldFlags collects repeatable -field name=value arguments in order.
type fieldFlags []discord.EmbedField

func (f *fieldFlags) String() string {
	names := make([]string, 0, len(*f))
	for _, field := range *f {
		names = append(names, field.Name)
	}
	return strings.Join(names, ",")
}

func (f *fieldFlags) Set(value string) error {
	name, fieldValue, found := strings.Cut(value, "=")
	if !found || name == "" {
		return fmt.Errorf("field must be in name=value form, got %q", value)
	}
	*f = append(*f, discord.NewEmbedField(name, fieldValue, false))
	return nil
}

func main() {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	webhookURL := flag.String("url", "", "Discord webhook URL (overrides config file if set).")
	webhookURLAlias := flag.String("u", "", "Alias for -url")

	message := flag.String("message", "", "Plain text message to send.")
	messageAlias := flag.String("m", "", "Alias for -message")

	status := flag.String("status", "", "Send a status embed: success, warning, error or info.")
	statusAlias := flag.String("s", "", "Alias for -status")

	title := flag.String("title", "", "Embed title (required with -status).")
	titleAlias := flag.String("t", "", "Alias for -title")

	description := flag.String("description", "", "Embed description.")
	descriptionAlias := flag.String("d", "", "Alias for -description")

	var fields fieldFlags
	flag.Var(&fields, "field", "Embed field as name=value. May be repeated; order is preserved.")

	imageURL := flag.String("image", "", "Embed image URL.")
	timeoutSecs := flag.Int("timeout", 0, "Request timeout in seconds (overrides config file if set).")
	flag.Parse()

	// Consolidate alias flags
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}
	if *webhookURL == "" && *webhookURLAlias != "" {
		*webhookURL = *webhookURLAlias
	}
	if *message == "" && *messageAlias != "" {
		*message = *messageAlias
	}
	if *status == "" && *statusAlias != "" {
		*status = *statusAlias
	}
	if *title == "" && *titleAlias != "" {
		*title = *titleAlias
	}
	if *description == "" && *descriptionAlias != "" {
		*description = *descriptionAlias
	}

	if *message == "" && *status == "" {
		fmt.Fprintln(os.Stderr, "Error: either -message or -status is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadGlobalConfig(*configFile, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if *webhookURL != "" {
		cfg.WebhookConfig.WebhookURL = *webhookURL
	}
	if *timeoutSecs > 0 {
		cfg.WebhookConfig.TimeoutSeconds = *timeoutSecs
	}

	appLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	client, err := webhook.NewClient(webhook.ClientConfig{
		WebhookURL: cfg.WebhookConfig.WebhookURL,
		Username:   cfg.WebhookConfig.Username,
		AvatarURL:  cfg.WebhookConfig.AvatarURL,
		Timeout:    time.Duration(cfg.WebhookConfig.TimeoutSeconds) * time.Second,
	}, appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Invalid webhook configuration")
		os.Exit(1)
	}

	ctx := context.Background()

	if *status != "" {
		err = sendStatusEmbed(ctx, client, *status, *title, *description, fields, *imageURL)
	} else {
		err = client.Send(ctx, *message)
	}
	if err != nil {
		appLogger.Error().Err(err).Msg("Failed to send webhook message")
		os.Exit(1)
	}

	appLogger.Info().Msg("Webhook message sent")
}

// sendStatusEmbed assembles the status embed, checks it against Discord's
// structural limits, and dispatches it.
func sendStatusEmbed(ctx context.Context, client *webhook.Client, status, title, description string, fields []discord.EmbedField, imageURL string) error {
	if title == "" {
		return fmt.Errorf("-title is required with -status")
	}
	parsedStatus := discord.Status(strings.ToLower(status))
	if !parsedStatus.IsValid() {
		return fmt.Errorf("unknown status %q: expected success, warning, error or info", status)
	}

	builder := client.NewEmbed().
		WithTitle(title).
		WithStatusColor(parsedStatus).
		WithCurrentTimestamp()
	if description != "" {
		builder.WithDescription(description)
	}
	if len(fields) > 0 {
		builder.AddFields(fields)
	}
	if imageURL != "" {
		builder.WithImage(imageURL)
	}
	embed := builder.Build()

	if err := discord.NewEmbedValidator().ValidateEmbed(embed); err != nil {
		return err
	}

	return client.SendEmbeds(ctx, []discord.Embed{embed})
}
