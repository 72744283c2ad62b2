package routing

import (
	"regexp"
	"strings"
)

// mentionPattern matches a leading @alias token, e.g. "@val what am I worth?".
// Only a leading mention is a routing directive; an @ later in the text is
// ordinary prose.
var mentionPattern = regexp.MustCompile(`^@([A-Za-z][A-Za-z0-9_-]*)\b`)

// ParsedMessage is the routing-relevant decomposition of a chat message.
type ParsedMessage struct {
	Mention     string // lowercased alias token without the @, "" if none
	CleanPrompt string // message with the mention token stripped
}

// ParseMention extracts a leading alias mention from the message. The
// mention is NOT resolved here; the router decides whether it maps to a
// registered agent.
func ParseMention(message string) ParsedMessage {
	trimmed := strings.TrimSpace(message)

	m := mentionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return ParsedMessage{CleanPrompt: trimmed}
	}

	clean := strings.TrimSpace(trimmed[len(m[0]):])
	return ParsedMessage{
		Mention:     strings.ToLower(m[1]),
		CleanPrompt: clean,
	}
}
