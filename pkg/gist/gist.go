// Package gist archives brag content to a single GitHub gist.
package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is the public GitHub API endpoint.
const DefaultAPIURL = "https://api.github.com"

// Config holds everything the client needs. User, Token and GistID must
// all be set for the client to do anything.
type Config struct {
	APIURL string
	User   string
	Token  string
	GistID string

	HTTPClient *http.Client
	Logger     *slog.Logger
	Now        func() time.Time
}

// Client PATCHes brag content into a gist. A client missing any
// credential is disabled, not broken: Archive becomes a no-op.
type Client struct {
	apiURL string
	user   string
	token  string
	gistID string

	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewClient builds a gist client, filling unset collaborators with
// defaults.
func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Client{
		apiURL: cfg.APIURL,
		user:   cfg.User,
		token:  cfg.Token,
		gistID: cfg.GistID,
		client: cfg.HTTPClient,
		logger: cfg.Logger,
		now:    cfg.Now,
	}
}

// Enabled reports whether all three credentials are present.
func (c *Client) Enabled() bool {
	return c.user != "" && c.token != "" && c.gistID != ""
}

type patchRequest struct {
	Description string               `json:"description"`
	Files       map[string]fileEntry `json:"files"`
}

type fileEntry struct {
	Content string `json:"content"`
}

// Archive updates the configured gist with the brag content under
// filename. Disabled clients return nil without touching the network.
// A rejected update (non-2xx) is logged and treated as non-fatal; only
// transport failures are returned.
func (c *Client) Archive(ctx context.Context, filename, content string) error {
	if !c.Enabled() {
		return nil
	}

	payload := patchRequest{
		Description: fmt.Sprintf("Brag posted: %s", c.now().Format("2006-01-02")),
		Files:       map[string]fileEntry{filename: {Content: content}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling gist payload: %w", err)
	}

	host := strings.TrimPrefix(c.apiURL, "http://")
	host = strings.TrimPrefix(host, "https://")
	url := fmt.Sprintf("https://%s/gists/%s", host, c.gistID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/vnd.github.v3+json")
	req.Header.Set("user-agent", c.user)
	req.Header.Set("authorization", "token "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("updating gist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("error sending gist",
			"status", resp.StatusCode,
			"body", string(respBody),
		)
	}
	return nil
}
