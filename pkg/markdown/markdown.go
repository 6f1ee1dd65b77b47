// Package markdown derives presentation variants of brag content.
//
// Every function here is pure and total: the input string is never
// mutated, nothing can fail, and calling a transform twice with the same
// input yields the same output.
package markdown

import (
	"regexp"
	"strings"
)

var (
	// Headings with five or more # are deliberately not matched.
	headingRe      = regexp.MustCompile(`(?m)^#{1,4}\s(.+)$`)
	topBulletRe    = regexp.MustCompile(`(?m)^[-*]\s?`)
	nestedBulletRe = regexp.MustCompile(`(?m)^\s+[-*]\s?`)
)

// ExtractTitle returns the text of the first heading line (one to four
// leading # followed by a space), trimmed. Returns "" when the content has
// no heading; later headings are ignored.
func ExtractTitle(content string) string {
	m := headingRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// BulletsToDiamonds rewrites bullet lines into diamond glyph tokens:
// top-level bullets become :small_blue_diamond:, indented bullets become
// :small_orange_diamond: with the leading whitespace consumed. The
// top-level pass runs first; its output never starts with - or *, so the
// indented pass cannot re-match it.
func BulletsToDiamonds(content string) string {
	content = topBulletRe.ReplaceAllString(content, ":small_blue_diamond: ")
	content = nestedBulletRe.ReplaceAllString(content, ":small_orange_diamond: ")
	return content
}

// HeadingsToBold rewrites heading lines (one to four leading #) into
// **bold** text. Lines with five or more # pass through unchanged.
func HeadingsToBold(content string) string {
	return headingRe.ReplaceAllString(content, "**${1}**")
}
