package gameserver

import (
	"regexp"
	"strings"
)

const (
	maxNameLength = 15
	maxChatLength = 60
	defaultName   = "wanderer"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	nameDisallowed    = regexp.MustCompile(`[^A-Za-z0-9 _-]`)
	whitespacePattern = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
)

// sanitizeName strips markup and unsupported characters from a player
// name. The result is never empty.
func sanitizeName(name string) string {
	value := tagPattern.ReplaceAllString(name, "")
	value = nameDisallowed.ReplaceAllString(value, " ")
	value = collapseSpaces(value)
	if value == "" {
		value = defaultName
	}
	return truncate(value, maxNameLength)
}

// sanitizeChat strips markup and collapses whitespace. May return "".
func sanitizeChat(text string) string {
	value := tagPattern.ReplaceAllString(text, "")
	return truncate(collapseSpaces(value), maxChatLength)
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
