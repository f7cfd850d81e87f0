package discord

import (
	"fmt"

	"github.com/aleister1102/discordhook/internal/errorwrapper"
)

// EmbedValidator checks embeds against Discord's structural limits. The
// send paths never invoke it; callers opt in when they want to fail before
// handing an oversized embed to the remote platform.
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates a single embed
func (ev *EmbedValidator) ValidateEmbed(embed Embed) error {
	if len(embed.Title) > 256 {
		return errorwrapper.NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}

	if len(embed.Description) > 4096 {
		return errorwrapper.NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}

	if len(embed.Fields) > 25 {
		return errorwrapper.NewValidationError("fields", embed.Fields, "cannot have more than 25 fields")
	}

	for i, field := range embed.Fields {
		if field.Name == "" {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if len(field.Name) > 256 {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed 256 characters", i))
		}
		if len(field.Value) > 1024 {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed 1024 characters", i))
		}
	}

	if embed.Footer != nil && len(embed.Footer.Text) > 2048 {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
	}

	return nil
}

// ValidateEmbeds validates each embed in order and returns the first failure.
func (ev *EmbedValidator) ValidateEmbeds(embeds []Embed) error {
	for i, embed := range embeds {
		if err := ev.ValidateEmbed(embed); err != nil {
			return errorwrapper.WrapError(err, fmt.Sprintf("embed %d", i))
		}
	}
	return nil
}
