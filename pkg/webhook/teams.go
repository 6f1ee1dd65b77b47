package webhook

import "github.com/aretw0/braghook/pkg/markdown"

// toggleTargetID binds the card's toggle action to the collapsible body
// block. Both sides must use the same identifier.
const toggleTargetID = "contentToToggle"

// TeamsMessage is the MS Teams webhook payload: a message wrapping one
// adaptive card attachment.
type TeamsMessage struct {
	Type        string            `json:"type"`
	Attachments []TeamsAttachment `json:"attachments"`
}

// TeamsAttachment carries an adaptive card.
type TeamsAttachment struct {
	ContentType string       `json:"contentType"`
	Content     AdaptiveCard `json:"content"`
}

// AdaptiveCard follows the adaptivecards.io 1.2 schema.
type AdaptiveCard struct {
	Schema     string        `json:"$schema"`
	Version    string        `json:"version"`
	Type       string        `json:"type"`
	ThemeColor string        `json:"themeColor"`
	Body       []CardElement `json:"body"`
	Actions    []CardAction  `json:"actions"`
	MSTeams    CardMSTeams   `json:"msteams"`
}

// CardElement is implemented by every block that can appear in a card
// body or inside a column.
type CardElement interface {
	cardElement()
}

// TextBlock is a text element. IsVisible is a pointer so an explicit
// false survives serialization; the collapsible body block depends on it.
type TextBlock struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Size      string `json:"size,omitempty"`
	Weight    string `json:"weight,omitempty"`
	Style     string `json:"style,omitempty"`
	Spacing   string `json:"spacing,omitempty"`
	IsSubtle  bool   `json:"isSubtle,omitempty"`
	Wrap      bool   `json:"wrap,omitempty"`
	Fallback  string `json:"fallback,omitempty"`
	Separator bool   `json:"separator,omitempty"`
	ID        string `json:"id,omitempty"`
	IsVisible *bool  `json:"isVisible,omitempty"`
}

func (TextBlock) cardElement() {}

// ColumnSet lays out columns side by side.
type ColumnSet struct {
	Type    string   `json:"type"`
	Columns []Column `json:"columns"`
}

func (ColumnSet) cardElement() {}

// Column is one column of a ColumnSet.
type Column struct {
	Type  string        `json:"type"`
	Width string        `json:"width"`
	Items []CardElement `json:"items"`
}

// Image is an image element.
type Image struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Size     string `json:"size,omitempty"`
	Style    string `json:"style,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

func (Image) cardElement() {}

// CardAction is a card-level action.
type CardAction struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	TargetElements []string `json:"targetElements"`
}

// CardMSTeams holds Teams-specific rendering hints. Entities must
// serialize as an empty array, not null.
type CardMSTeams struct {
	Width    string `json:"width"`
	Entities []any  `json:"entities"`
}

// TeamsBuilder renders the note as an adaptive card: a title header, an
// author row (icon next to name and subtitle), and a collapsible body
// behind a toggle action. Headings are bolded; bullets are left alone
// because Teams has no emoji shortcodes for the diamond glyphs.
type TeamsBuilder struct{}

func (TeamsBuilder) Build(author, authorIcon, content string) any {
	title := markdown.ExtractTitle(content)
	content = markdown.HeadingsToBold(content)

	hidden := false
	card := AdaptiveCard{
		Schema:     "http://adaptivecards.io/schemas/adaptive-card.json",
		Version:    "1.2",
		Type:       "AdaptiveCard",
		ThemeColor: "9C5D7F",
		Body: []CardElement{
			TextBlock{
				Type:   "TextBlock",
				Text:   title,
				Size:   "medium",
				Weight: "bolder",
				Style:  "heading",
			},
			ColumnSet{
				Type: "ColumnSet",
				Columns: []Column{
					{
						Type:  "Column",
						Width: "auto",
						Items: []CardElement{
							Image{
								Type:     "Image",
								URL:      authorIcon,
								Size:     "small",
								Style:    "person",
								Fallback: "drop",
							},
						},
					},
					{
						Type:  "Column",
						Width: "stretch",
						Items: []CardElement{
							TextBlock{
								Type:   "TextBlock",
								Text:   author,
								Size:   "default",
								Weight: "bolder",
								Wrap:   true,
							},
							TextBlock{
								Type:     "TextBlock",
								Text:     "Daily Brag",
								Spacing:  "none",
								IsSubtle: true,
								Wrap:     true,
							},
						},
					},
				},
			},
			TextBlock{
				Type:      "TextBlock",
				Text:      content,
				Size:      "default",
				Weight:    "default",
				Wrap:      true,
				Fallback:  "drop",
				Separator: true,
				ID:        toggleTargetID,
				IsVisible: &hidden,
			},
		},
		Actions: []CardAction{
			{
				Type:           "Action.ToggleVisibility",
				Title:          "Toggle Content",
				TargetElements: []string{toggleTargetID},
			},
		},
		MSTeams: CardMSTeams{
			Width:    "Full",
			Entities: []any{},
		},
	}

	return TeamsMessage{
		Type: "message",
		Attachments: []TeamsAttachment{
			{
				ContentType: "application/vnd.microsoft.card.adaptive",
				Content:     card,
			},
		},
	}
}
