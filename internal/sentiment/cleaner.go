package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// CleanText renders markdown bodies to plain text, strips markup and URLs,
// and collapses whitespace. Reddit comments arrive as markdown; the other
// platforms pass through mostly unchanged.
func CleanText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := tagPattern.ReplaceAllString(string(output), " ")
	plainText = strings.Join(strings.Fields(plainText), " ")

	return strings.TrimSpace(RemoveLinks(plainText))
}
