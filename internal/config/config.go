// Package config loads and creates the braghook configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/braghook/pkg/webhook"
)

// DefaultFile is the config file braghook looks for when --config is not
// given.
const DefaultFile = "braghook.yaml"

// Config mirrors the braghook.yaml file. An empty string means the
// corresponding integration is disabled, never an error.
type Config struct {
	Workdir             string `yaml:"workdir"`
	Editor              string `yaml:"editor"`
	EditorArgs          string `yaml:"editor_args"`
	Author              string `yaml:"author"`
	AuthorIcon          string `yaml:"author_icon"`
	DiscordWebhook      string `yaml:"discord_webhook"`
	DiscordWebhookPlain string `yaml:"discord_webhook_plain"`
	MSTeamsWebhook      string `yaml:"msteams_webhook"`
	GithubAPIURL        string `yaml:"github_api_url"`
	GithubUser          string `yaml:"github_user"`
	GithubPAT           string `yaml:"github_pat"`
	GistID              string `yaml:"gist_id"`
	OpenWeatherMapURL   string `yaml:"openweathermap_url"`
}

// Default returns the configuration braghook ships with.
func Default() Config {
	return Config{
		Workdir:      ".",
		Editor:       "vim",
		Author:       "braghook",
		GithubAPIURL: "https://api.github.com",
	}
}

// Load reads the config file at path, falling back to defaults for every
// missing key. A missing file is not an error; the defaults apply. A
// local .env file is loaded first and any BRAGHOOK_* environment variable
// overrides its config key, so tokens can stay out of the config file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	def := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BRAGHOOK")
	v.AutomaticEnv()

	v.SetDefault("workdir", def.Workdir)
	v.SetDefault("editor", def.Editor)
	v.SetDefault("editor_args", def.EditorArgs)
	v.SetDefault("author", def.Author)
	v.SetDefault("author_icon", def.AuthorIcon)
	v.SetDefault("discord_webhook", def.DiscordWebhook)
	v.SetDefault("discord_webhook_plain", def.DiscordWebhookPlain)
	v.SetDefault("msteams_webhook", def.MSTeamsWebhook)
	v.SetDefault("github_api_url", def.GithubAPIURL)
	v.SetDefault("github_user", def.GithubUser)
	v.SetDefault("github_pat", def.GithubPAT)
	v.SetDefault("gist_id", def.GistID)
	v.SetDefault("openweathermap_url", def.OpenWeatherMapURL)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return Config{
		Workdir:             v.GetString("workdir"),
		Editor:              v.GetString("editor"),
		EditorArgs:          v.GetString("editor_args"),
		Author:              v.GetString("author"),
		AuthorIcon:          v.GetString("author_icon"),
		DiscordWebhook:      v.GetString("discord_webhook"),
		DiscordWebhookPlain: v.GetString("discord_webhook_plain"),
		MSTeamsWebhook:      v.GetString("msteams_webhook"),
		GithubAPIURL:        v.GetString("github_api_url"),
		GithubUser:          v.GetString("github_user"),
		GithubPAT:           v.GetString("github_pat"),
		GistID:              v.GetString("gist_id"),
		OpenWeatherMapURL:   v.GetString("openweathermap_url"),
	}, nil
}

// Create writes the default config to path. Refuses to overwrite an
// existing file.
func Create(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("rendering default config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Destinations returns the webhook targets in dispatch order. Disabled
// entries are kept; skipping empty URLs stays the dispatcher's job so a
// hand-built destination list behaves the same as a config-derived one.
func (c Config) Destinations() []webhook.Destination {
	return []webhook.Destination{
		{Kind: webhook.KindDiscord, URL: c.DiscordWebhook},
		{Kind: webhook.KindDiscordPlain, URL: c.DiscordWebhookPlain},
		{Kind: webhook.KindTeams, URL: c.MSTeamsWebhook},
	}
}
