// Package webhook builds and delivers brag content to chat webhooks.
//
// Each destination kind is bound to a Builder that turns the raw note into
// the platform's payload schema. Field names and nesting in the payload
// types are wire contracts; the consuming platforms validate shape.
package webhook

// botName is the fixed display name attached to every outbound payload.
const botName = "braghook"

// Kind identifies a destination type and selects its payload builder.
type Kind string

const (
	KindDiscord      Kind = "discord"
	KindDiscordPlain Kind = "discord-plain"
	KindTeams        Kind = "msteams"
)

// Builder produces a target-specific message body from a note. Builders
// are pure: same inputs, same payload, no side effects.
type Builder interface {
	Build(author, authorIcon, content string) any
}

// Registry maps destination kinds to their builders. Adding a destination
// type means adding one entry here, not touching dispatch logic.
type Registry map[Kind]Builder

// DefaultRegistry returns builders for every kind braghook ships with.
func DefaultRegistry() Registry {
	return Registry{
		KindDiscord:      DiscordBuilder{},
		KindDiscordPlain: DiscordPlainBuilder{},
		KindTeams:        TeamsBuilder{},
	}
}
