package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Config holds configuration for HTTP clients
type Config struct {
	Timeout             time.Duration // Overall request timeout; zero leaves deadlines to the request context
	FollowRedirects     bool          // Whether to follow redirects
	MaxRedirects        int           // Maximum number of redirects to follow
	DialTimeout         time.Duration // Connection dial timeout
	TLSHandshakeTimeout time.Duration // TLS handshake timeout
	KeepAlive           time.Duration // Keep-alive duration
}

// DefaultConfig returns a default HTTP client configuration
func DefaultConfig() Config {
	return Config{
		Timeout:             0,
		FollowRedirects:     true,
		MaxRedirects:        10,
		DialTimeout:         10 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		KeepAlive:           30 * time.Second,
	}
}

// NewClient creates a new HTTP client with the given configuration
func NewClient(config Config, logger zerolog.Logger) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Msg("HTTP client created")

	return client
}

// Builder provides a fluent interface for building HTTP clients
type Builder struct {
	config Config
	logger zerolog.Logger
}

// NewBuilder creates a new HTTP client builder
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{
		config: DefaultConfig(),
		logger: logger,
	}
}

// WithTimeout sets the overall request timeout
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout
	return b
}

// WithFollowRedirects sets whether to follow redirects
func (b *Builder) WithFollowRedirects(follow bool) *Builder {
	b.config.FollowRedirects = follow
	return b
}

// WithMaxRedirects sets the maximum number of redirects
func (b *Builder) WithMaxRedirects(max int) *Builder {
	b.config.MaxRedirects = max
	return b
}

// Build creates the HTTP client with the configured settings
func (b *Builder) Build() *http.Client {
	return NewClient(b.config, b.logger)
}

// NewDiscordClient creates an HTTP client tuned for Discord webhook calls.
// Deadlines are enforced per request through the context, so no client-wide
// timeout is set.
func NewDiscordClient(logger zerolog.Logger) *http.Client {
	return NewBuilder(logger).
		WithFollowRedirects(true).
		WithMaxRedirects(3).
		Build()
}
