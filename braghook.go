// Package braghook keeps a daily brag file and delivers it to chat
// webhooks and a GitHub gist.
//
// The pipeline is a single linear pass: resolve today's file, open it in
// the editor, read it back, optionally append a weather line, then fan
// out to every configured destination. Nothing is queued, retried or
// persisted between runs.
package braghook

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/braghook/internal/config"
	"github.com/aretw0/braghook/internal/entry"
	"github.com/aretw0/braghook/pkg/gist"
	"github.com/aretw0/braghook/pkg/weather"
	"github.com/aretw0/braghook/pkg/webhook"
)

// Version exposes the version of the tool.
const Version = "0.2.0"

// Service wires the braghook pipeline: entry file, editor, transforms,
// webhook dispatch and gist archival. All collaborators are injected via
// options; the zero-option Service uses real ones.
type Service struct {
	cfg    config.Config
	logger *slog.Logger
	now    func() time.Time

	dispatcher *webhook.Dispatcher
	gist       *gist.Client
	weather    *weather.Client
}

// New builds a Service from the given configuration.
func New(cfg config.Config, opts ...Option) *Service {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Service{
		cfg:        cfg,
		logger:     o.logger,
		now:        o.now,
		dispatcher: webhook.NewDispatcher(o.client, o.logger, o.registry),
		gist: gist.NewClient(gist.Config{
			APIURL:     cfg.GithubAPIURL,
			User:       cfg.GithubUser,
			Token:      cfg.GithubPAT,
			GistID:     cfg.GistID,
			HTTPClient: o.client,
			Logger:     o.logger,
			Now:        o.now,
		}),
		weather: weather.NewClient(cfg.OpenWeatherMapURL, o.client, o.logger),
	}
}

// EntryPath resolves the brag file for today, unless override names a
// specific file.
func (s *Service) EntryPath(override string) string {
	if override != "" {
		return override
	}
	return entry.Filename(s.cfg.Workdir, s.now())
}

// Edit ensures the brag file exists (seeding it with the template) and
// opens it in the configured editor, blocking until the editor exits.
func (s *Service) Edit(filename string) error {
	if err := entry.EnsureFile(filename, s.now()); err != nil {
		return err
	}
	return entry.OpenEditor(s.cfg.Editor, s.cfg.EditorArgs, filename)
}

// Send reads the brag file, appends the weather line at most once, posts
// to every configured webhook and archives to the gist. Rejected
// deliveries (non-2xx) are logged inside the clients and do not fail the
// run; only transport-level failures surface here.
func (s *Service) Send(ctx context.Context, filename string) error {
	content, err := entry.Read(filename)
	if err != nil {
		return err
	}
	content = weather.Append(content, s.weather.Summary(ctx))
	s.logger.Debug("sending brag", "file", filename, "bytes", len(content))

	var errs []error
	if err := s.dispatcher.Send(ctx, s.cfg.Author, s.cfg.AuthorIcon, content, s.cfg.Destinations()); err != nil {
		errs = append(errs, err)
	}
	if err := s.gist.Archive(ctx, filepath.Base(filename), content); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
