package braghook

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/braghook/pkg/webhook"
)

// options holds the internal configuration for the Service.
type options struct {
	logger   *slog.Logger
	client   *http.Client
	now      func() time.Time
	registry webhook.Registry
}

// Option defines a functional option for configuring the Service.
type Option func(*options)

// defaultOptions returns the default collaborators.
func defaultOptions() *options {
	return &options{
		logger:   slog.Default(),
		client:   &http.Client{},
		now:      time.Now,
		registry: webhook.DefaultRegistry(),
	}
}

// WithLogger sets the logger shared by the dispatcher and clients.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient injects the HTTP client used for every outbound call.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithClock overrides the time source used for filenames and templates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRegistry replaces the webhook builder registry.
func WithRegistry(registry webhook.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}
