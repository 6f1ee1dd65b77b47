package webhook

import (
	"fmt"

	"github.com/aretw0/braghook/pkg/markdown"
)

// embedColor is the accent color Discord renders on the embed stripe.
const embedColor = 0x9C5D7F

// DiscordMessage is the Discord webhook payload. The plain variant fills
// Content; the rich variant fills Embeds. Discord rejects messages that
// carry neither.
type DiscordMessage struct {
	Username string         `json:"username"`
	Content  string         `json:"content,omitempty"`
	Embeds   []DiscordEmbed `json:"embeds,omitempty"`
}

// DiscordEmbed is a single rich embed.
type DiscordEmbed struct {
	Author      DiscordAuthor `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Color       int           `json:"color"`
}

// DiscordAuthor is the embed author line.
type DiscordAuthor struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
}

// DiscordPlainBuilder wraps the note verbatim in a fenced code block, for
// channels that should show the raw markdown.
type DiscordPlainBuilder struct{}

func (DiscordPlainBuilder) Build(author, authorIcon, content string) any {
	content = fmt.Sprintf("%s (%s)\n%s", author, authorIcon, content)
	return DiscordMessage{
		Username: botName,
		Content:  fmt.Sprintf("```%s```", content),
	}
}

// DiscordBuilder renders the note as a rich embed: the first heading
// becomes the title, bullets become diamond glyphs and headings become
// bold text in the description.
type DiscordBuilder struct{}

func (DiscordBuilder) Build(author, authorIcon, content string) any {
	title := markdown.ExtractTitle(content)
	content = markdown.BulletsToDiamonds(content)
	content = markdown.HeadingsToBold(content)

	return DiscordMessage{
		Username: botName,
		Embeds: []DiscordEmbed{
			{
				Author:      DiscordAuthor{Name: author, IconURL: authorIcon},
				Title:       title,
				Description: content,
				Color:       embedColor,
			},
		},
	}
}
