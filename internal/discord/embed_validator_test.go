package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedValidator_ValidEmbed(t *testing.T) {
	validator := NewEmbedValidator()

	embed := NewEmbedBuilder().
		WithTitle("Deploy finished").
		WithDescription("All services healthy").
		AddField("duration", "42s", true).
		Build()

	assert.NoError(t, validator.ValidateEmbed(embed))
}

func TestEmbedValidator_EmptyEmbed(t *testing.T) {
	validator := NewEmbedValidator()

	assert.NoError(t, validator.ValidateEmbed(Embed{}))
}

func TestEmbedValidator_TitleTooLong(t *testing.T) {
	validator := NewEmbedValidator()

	embed := NewEmbedBuilder().WithTitle(strings.Repeat("a", 257)).Build()

	err := validator.ValidateEmbed(embed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "256")
}

func TestEmbedValidator_TooManyFields(t *testing.T) {
	validator := NewEmbedValidator()

	builder := NewEmbedBuilder()
	for i := 0; i < 26; i++ {
		builder.AddField("name", "value", false)
	}

	err := validator.ValidateEmbed(builder.Build())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "25 fields")
}

func TestEmbedValidator_EmptyFieldName(t *testing.T) {
	validator := NewEmbedValidator()

	embed := NewEmbedBuilder().AddField("", "value", false).Build()

	err := validator.ValidateEmbed(embed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")
}

func TestEmbedValidator_FieldValueTooLong(t *testing.T) {
	validator := NewEmbedValidator()

	embed := NewEmbedBuilder().AddField("name", strings.Repeat("v", 1025), false).Build()

	err := validator.ValidateEmbed(embed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1024")
}

func TestEmbedValidator_FooterTooLong(t *testing.T) {
	validator := NewEmbedValidator()

	embed := NewEmbedBuilder().WithFooter(strings.Repeat("f", 2049), "").Build()

	err := validator.ValidateEmbed(embed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2048")
}

func TestEmbedValidator_ValidateEmbeds(t *testing.T) {
	validator := NewEmbedValidator()

	good := NewEmbedBuilder().WithTitle("ok").Build()
	bad := NewEmbedBuilder().WithTitle(strings.Repeat("a", 257)).Build()

	require.NoError(t, validator.ValidateEmbeds([]Embed{good, good}))

	err := validator.ValidateEmbeds([]Embed{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed 1")
}
