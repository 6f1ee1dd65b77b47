// Package weather appends an OpenWeatherMap summary line to brag content.
//
// Weather is decoration: any failure along the way is logged and yields
// an empty summary, never an error for the run.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

const kelvinOffset = 273.15

// weatherLine matches the summary line this package emits, anchored to
// its fixed shape so Append stays idempotent across runs.
var weatherLine = regexp.MustCompile(`(?m)^min: .+hPa$`)

// Client fetches current conditions from a preconfigured OpenWeatherMap
// URL (city and API key baked into the query string). An empty URL
// disables the client.
type Client struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewClient builds a weather client. Nil collaborators fall back to
// http.DefaultClient and slog.Default.
func NewClient(url string, client *http.Client, logger *slog.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{url: url, client: client, logger: logger}
}

// report is the subset of the OpenWeatherMap response we render.
// Temperatures arrive in Kelvin.
type report struct {
	Main struct {
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
}

// Summary fetches the configured endpoint and renders a one-line report
// ending in a newline. Returns "" when the client is disabled or the
// fetch fails.
func (c *Client) Summary(ctx context.Context) string {
	if c.url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.logger.Error("building weather request", "error", err)
		return ""
	}
	req.Header.Set("content-type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("error fetching weather", "error", err)
		return ""
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("reading weather response", "error", err)
		return ""
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("error fetching weather", "status", resp.StatusCode, "body", string(body))
		return ""
	}

	var r report
	if err := json.Unmarshal(body, &r); err != nil {
		c.logger.Error("decoding weather response", "error", err)
		return ""
	}

	return fmt.Sprintf(
		"min: %.1f°C, max: %.1f°C, feels like: %.1f°C, humidity: %d%%, pressure: %dhPa\n",
		r.Main.TempMin-kelvinOffset,
		r.Main.TempMax-kelvinOffset,
		r.Main.FeelsLike-kelvinOffset,
		r.Main.Humidity,
		r.Main.Pressure,
	)
}

// Append adds the weather line to content, at most once: content that
// already carries a summary line is returned unchanged, as is content
// paired with an empty line.
func Append(content, line string) string {
	if line == "" || weatherLine.MatchString(content) {
		return content
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + line
}
