package extraction

import (
	"regexp"
	"strings"
)

// MinResumeChars is the shortest normalized text the analyzer will accept.
const MinResumeChars = 50

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses consecutive whitespace to single spaces and trims
// the result. The scoring engine expects its input in this form.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
