package discord

import (
	"regexp"
	"testing"
	"time"
)

func TestEmbedBuilder_Build(t *testing.T) {
	embed := NewEmbedBuilder().
		WithTitle("Test").
		WithDescription("Description").
		WithTimestamp(time.Now()).
		WithColor(0x00FF00).
		Build()

	if embed.Title != "Test" {
		t.Errorf("expected title 'Test', got '%s'", embed.Title)
	}
	if embed.Description != "Description" {
		t.Errorf("expected description, got '%s'", embed.Description)
	}
	if embed.Color != 0x00FF00 {
		t.Errorf("expected color 0x00FF00, got 0x%X", embed.Color)
	}
	if embed.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestEmbedBuilder_TimestampFormat(t *testing.T) {
	instant := time.Date(2024, 3, 7, 12, 30, 45, 123_000_000, time.UTC)
	embed := NewEmbedBuilder().WithTimestamp(instant).Build()

	if embed.Timestamp != "2024-03-07T12:30:45.123Z" {
		t.Errorf("unexpected timestamp format: %s", embed.Timestamp)
	}

	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)
	current := NewEmbedBuilder().WithCurrentTimestamp().Build()
	if !pattern.MatchString(current.Timestamp) {
		t.Errorf("current timestamp not ISO-8601 with millisecond precision: %s", current.Timestamp)
	}
}

func TestEmbedBuilder_FieldOrder(t *testing.T) {
	embed := NewEmbedBuilder().
		AddField("a", "1", false).
		AddField("b", "2", false).
		Build()

	if len(embed.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(embed.Fields))
	}
	if embed.Fields[0].Name != "a" || embed.Fields[0].Value != "1" || embed.Fields[0].Inline {
		t.Errorf("unexpected first field: %+v", embed.Fields[0])
	}
	if embed.Fields[1].Name != "b" || embed.Fields[1].Value != "2" || embed.Fields[1].Inline {
		t.Errorf("unexpected second field: %+v", embed.Fields[1])
	}
}

func TestEmbedBuilder_AddFields(t *testing.T) {
	fields := []EmbedField{
		NewEmbedField("first", "1", true),
		NewEmbedField("second", "2", false),
	}

	embed := NewEmbedBuilder().
		AddField("zero", "0", false).
		AddFields(fields).
		Build()

	if len(embed.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(embed.Fields))
	}
	if embed.Fields[1].Name != "first" || embed.Fields[2].Name != "second" {
		t.Errorf("fields not appended in order: %+v", embed.Fields)
	}
}

func TestEmbedBuilder_StatusColors(t *testing.T) {
	tests := []struct {
		status Status
		color  int
	}{
		{StatusSuccess, 0x57F287},
		{StatusWarning, 0xFEE75C},
		{StatusError, 0xED4245},
		{StatusInfo, 0x5865F2},
	}

	for _, tt := range tests {
		embed := NewEmbedBuilder().WithStatusColor(tt.status).Build()
		if embed.Color != tt.color {
			t.Errorf("status %s: expected color 0x%X, got 0x%X", tt.status, tt.color, embed.Color)
		}
	}
}

func TestEmbedBuilder_EmptyEmbedIsValid(t *testing.T) {
	embed := NewEmbedBuilder().Build()

	if embed.Title != "" || embed.Description != "" || embed.Fields != nil {
		t.Errorf("expected zero-value embed, got %+v", embed)
	}
	if embed.Footer != nil || embed.Image != nil || embed.Thumbnail != nil {
		t.Error("expected no sub-objects on an empty embed")
	}
}

func TestEmbedBuilder_FooterAndMedia(t *testing.T) {
	embed := NewEmbedBuilder().
		WithFooter("footer text", "https://example.com/icon.png").
		WithImage("https://example.com/image.png").
		WithThumbnail("https://example.com/thumb.png").
		WithURL("https://example.com").
		Build()

	if embed.Footer == nil || embed.Footer.Text != "footer text" || embed.Footer.IconURL != "https://example.com/icon.png" {
		t.Errorf("unexpected footer: %+v", embed.Footer)
	}
	if embed.Image == nil || embed.Image.URL != "https://example.com/image.png" {
		t.Errorf("unexpected image: %+v", embed.Image)
	}
	if embed.Thumbnail == nil || embed.Thumbnail.URL != "https://example.com/thumb.png" {
		t.Errorf("unexpected thumbnail: %+v", embed.Thumbnail)
	}
	if embed.URL != "https://example.com" {
		t.Errorf("unexpected url: %s", embed.URL)
	}
}
