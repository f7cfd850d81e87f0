package discord

import (
	"time"
)

// timestampLayout is ISO-8601 with millisecond precision and the UTC
// designator, the format Discord renders for embed timestamps.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// EmbedBuilder helps in constructing Embed objects. Every mutator returns
// the builder itself so calls can be chained. The builder performs no
// validation; structural limits are the sender's concern at dispatch time.
type EmbedBuilder struct {
	embed Embed
}

// NewEmbedBuilder creates a new embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed: Embed{},
	}
}

// WithTitle sets the embed title
func (eb *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	eb.embed.Title = title
	return eb
}

// WithDescription sets the embed description
func (eb *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	eb.embed.Description = description
	return eb
}

// WithURL sets the embed URL
func (eb *EmbedBuilder) WithURL(url string) *EmbedBuilder {
	eb.embed.URL = url
	return eb
}

// WithColor sets the embed color. The value is passed through as-is; out of
// range values are left for the remote platform to reject.
func (eb *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	eb.embed.Color = color
	return eb
}

// WithStatusColor sets the embed color from the fixed status color table
func (eb *EmbedBuilder) WithStatusColor(status Status) *EmbedBuilder {
	eb.embed.Color = status.Color()
	return eb
}

// WithTimestamp sets the embed timestamp
func (eb *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	eb.embed.Timestamp = timestamp.UTC().Format(timestampLayout)
	return eb
}

// WithCurrentTimestamp sets the embed timestamp to the current instant
func (eb *EmbedBuilder) WithCurrentTimestamp() *EmbedBuilder {
	return eb.WithTimestamp(time.Now())
}

// WithFooter sets the embed footer. An empty iconURL leaves the footer
// without an icon reference.
func (eb *EmbedBuilder) WithFooter(text, iconURL string) *EmbedBuilder {
	eb.embed.Footer = NewEmbedFooter(text, iconURL)
	return eb
}

// WithImage sets the embed image
func (eb *EmbedBuilder) WithImage(url string) *EmbedBuilder {
	eb.embed.Image = NewEmbedImage(url)
	return eb
}

// WithThumbnail sets the embed thumbnail
func (eb *EmbedBuilder) WithThumbnail(url string) *EmbedBuilder {
	eb.embed.Thumbnail = NewEmbedThumbnail(url)
	return eb
}

// AddField appends a field to the embed, preserving insertion order
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	eb.embed.Fields = append(eb.embed.Fields, NewEmbedField(name, value, inline))
	return eb
}

// AddFields appends fields to the embed in the given order
func (eb *EmbedBuilder) AddFields(fields []EmbedField) *EmbedBuilder {
	eb.embed.Fields = append(eb.embed.Fields, fields...)
	return eb
}

// Build returns the accumulated embed. The returned value shares the Fields
// backing array with the builder, so callers should discard the builder
// after Build rather than keep mutating it.
func (eb *EmbedBuilder) Build() Embed {
	return eb.embed
}
