package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// ErrUnavailable marks destinations that could not be reached at the
// transport level (DNS failure, connection refused). HTTP-level
// rejections are logged, not returned.
var ErrUnavailable = errors.New("destination unavailable")

// Destination is a configured outbound target. An empty URL means the
// destination is disabled and is never dispatched to.
type Destination struct {
	Kind Kind
	URL  string
}

// Dispatcher delivers a note to a set of webhook destinations, one POST
// per destination, best effort: a failing destination never blocks the
// remaining ones.
type Dispatcher struct {
	client   *http.Client
	logger   *slog.Logger
	registry Registry
}

// NewDispatcher builds a dispatcher. Nil arguments fall back to
// http.DefaultClient, slog.Default and DefaultRegistry.
func NewDispatcher(client *http.Client, logger *slog.Logger, registry Registry) *Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Dispatcher{client: client, logger: logger, registry: registry}
}

// Send builds and posts the note to every destination with a non-empty
// URL. Rejections (non-2xx) are logged with the response body and
// skipped. Transport failures are logged too, but collected and returned
// joined under ErrUnavailable once every destination has been attempted,
// so the caller can tell a degraded run from a clean one.
func (d *Dispatcher) Send(ctx context.Context, author, authorIcon, content string, dests []Destination) error {
	var errs []error
	for _, dest := range dests {
		if dest.URL == "" {
			continue
		}
		builder, ok := d.registry[dest.Kind]
		if !ok {
			d.logger.Error("no builder registered for destination", "kind", dest.Kind)
			continue
		}
		payload := builder.Build(author, authorIcon, content)
		if err := d.post(ctx, dest, payload); err != nil {
			d.logger.Error("destination unreachable", "kind", dest.Kind, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", dest.Kind, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
	}
	return nil
}

func (d *Dispatcher) post(ctx context.Context, dest Destination, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s payload: %w", dest.Kind, err)
	}

	host, path := SplitURL(dest.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://"+host+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("content-type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		d.logger.Error("error sending message",
			"kind", dest.Kind,
			"status", resp.StatusCode,
			"body", string(respBody),
		)
	}
	return nil
}

// SplitURL strips a leading http:// or https:// scheme and splits the
// remainder at the first slash. The returned path keeps its leading slash
// and is empty when the URL has no path segment. Connections are always
// made over TLS regardless of the configured scheme.
func SplitURL(url string) (host, path string) {
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	host, rest, found := strings.Cut(url, "/")
	if !found {
		return host, ""
	}
	return host, "/" + rest
}
