package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aleister1102/discordhook/internal/discord"
	"github.com/aleister1102/discordhook/internal/errorwrapper"
)

const userAgent = "discordhook/1.0"

// dispatch serializes the payload and issues one POST to the configured
// endpoint. The configured timeout is enforced by cancelling the in-flight
// request on expiry. Failures are normalized: non-2xx responses become
// HTTPError, an elapsed deadline becomes TimeoutError, and anything else
// becomes NetworkError. No retries are attempted.
func (c *Client) dispatch(ctx context.Context, payload discord.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to encode webhook payload")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return errorwrapper.WrapError(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Error().
				Dur("timeout", c.config.Timeout).
				Msg("Webhook request timed out")
			return errorwrapper.NewTimeoutError(c.config.Timeout)
		}
		c.logger.Error().Err(err).Msg("Webhook request failed")
		return errorwrapper.NewNetworkError(c.config.WebhookURL, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("status", resp.Status).
			Msg("Webhook endpoint rejected the request")
		return errorwrapper.NewHTTPError(resp.StatusCode, resp.Status, string(respBody), c.config.WebhookURL)
	}

	// Webhook endpoints return no usable body on success.
	c.logger.Debug().
		Int("status_code", resp.StatusCode).
		Int("embed_count", len(payload.Embeds)).
		Msg("Webhook message sent")
	return nil
}
