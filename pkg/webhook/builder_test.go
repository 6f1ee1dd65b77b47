package webhook_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/braghook/pkg/markdown"
	"github.com/aretw0/braghook/pkg/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = "### Brag today\n\n- did a thing\n  - a nested thing\n"

func TestDiscordPlainBuilder(t *testing.T) {
	payload := webhook.DiscordPlainBuilder{}.Build("alice", "https://icon.test/a.png", sampleContent)

	msg, ok := payload.(webhook.DiscordMessage)
	require.True(t, ok)

	assert.Equal(t, "braghook", msg.Username)
	assert.Empty(t, msg.Embeds)
	assert.Equal(t, "```alice (https://icon.test/a.png)\n"+sampleContent+"```", msg.Content)

	// The plain shape must not leak an embeds key.
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "embeds")
	assert.Contains(t, m, "content")
}

func TestDiscordBuilder(t *testing.T) {
	payload := webhook.DiscordBuilder{}.Build("alice", "https://icon.test/a.png", sampleContent)

	msg, ok := payload.(webhook.DiscordMessage)
	require.True(t, ok)
	require.Len(t, msg.Embeds, 1)

	embed := msg.Embeds[0]
	assert.Equal(t, "braghook", msg.Username)
	assert.Equal(t, markdown.ExtractTitle(sampleContent), embed.Title)
	assert.Equal(t, "alice", embed.Author.Name)
	assert.Equal(t, "https://icon.test/a.png", embed.Author.IconURL)
	assert.Equal(t, 0x9C5D7F, embed.Color)
	assert.Contains(t, embed.Description, ":small_blue_diamond: did a thing")
	assert.Contains(t, embed.Description, ":small_orange_diamond: a nested thing")
	assert.Contains(t, embed.Description, "**Brag today**")

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	require.Contains(t, m, "embeds")
	first := m["embeds"].([]any)[0].(map[string]any)
	for _, key := range []string{"author", "title", "description", "color"} {
		assert.Contains(t, first, key)
	}
	assert.NotContains(t, m, "content")
}

func TestTeamsBuilder(t *testing.T) {
	payload := webhook.TeamsBuilder{}.Build("alice", "https://icon.test/a.png", sampleContent)

	msg, ok := payload.(webhook.TeamsMessage)
	require.True(t, ok)
	assert.Equal(t, "message", msg.Type)
	require.Len(t, msg.Attachments, 1)

	att := msg.Attachments[0]
	assert.Equal(t, "application/vnd.microsoft.card.adaptive", att.ContentType)

	card := att.Content
	assert.Equal(t, "http://adaptivecards.io/schemas/adaptive-card.json", card.Schema)
	assert.Equal(t, "1.2", card.Version)
	assert.Equal(t, "AdaptiveCard", card.Type)
	assert.Equal(t, "9C5D7F", card.ThemeColor)
	require.Len(t, card.Body, 3)

	header, ok := card.Body[0].(webhook.TextBlock)
	require.True(t, ok)
	assert.Equal(t, markdown.ExtractTitle(sampleContent), header.Text)
	assert.Equal(t, "heading", header.Style)

	columns, ok := card.Body[1].(webhook.ColumnSet)
	require.True(t, ok)
	require.Len(t, columns.Columns, 2)
	icon, ok := columns.Columns[0].Items[0].(webhook.Image)
	require.True(t, ok)
	assert.Equal(t, "https://icon.test/a.png", icon.URL)
	name, ok := columns.Columns[1].Items[0].(webhook.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "alice", name.Text)
	subtitle, ok := columns.Columns[1].Items[1].(webhook.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "Daily Brag", subtitle.Text)
	assert.True(t, subtitle.IsSubtle)

	body, ok := card.Body[2].(webhook.TextBlock)
	require.True(t, ok)
	assert.Contains(t, body.Text, "**Brag today**")
	// Bullets are intentionally not rewritten for Teams.
	assert.Contains(t, body.Text, "- did a thing")
	require.NotNil(t, body.IsVisible)
	assert.False(t, *body.IsVisible)

	require.Len(t, card.Actions, 1)
	action := card.Actions[0]
	assert.Equal(t, "Action.ToggleVisibility", action.Type)
	assert.Equal(t, []string{body.ID}, action.TargetElements)
}

func TestTeamsBuilderWireShape(t *testing.T) {
	payload := webhook.TeamsBuilder{}.Build("alice", "", "### Title\nbody")

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	attachments := m["attachments"].([]any)
	card := attachments[0].(map[string]any)["content"].(map[string]any)
	assert.Contains(t, card, "$schema")
	assert.Contains(t, card, "msteams")

	// entities must be an empty array, not null.
	msteams := card["msteams"].(map[string]any)
	entities, ok := msteams["entities"].([]any)
	require.True(t, ok)
	assert.Empty(t, entities)

	// The hidden body block serializes its explicit false.
	body := card["body"].([]any)[2].(map[string]any)
	visible, ok := body["isVisible"].(bool)
	require.True(t, ok)
	assert.False(t, visible)
	assert.Equal(t, "contentToToggle", body["id"])
}

func TestDefaultRegistryCoversAllKinds(t *testing.T) {
	registry := webhook.DefaultRegistry()
	for _, kind := range []webhook.Kind{webhook.KindDiscord, webhook.KindDiscordPlain, webhook.KindTeams} {
		assert.Contains(t, registry, kind)
	}
}
