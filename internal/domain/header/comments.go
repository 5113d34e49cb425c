package header

import (
	"regexp"
	"strings"

	"github.com/corey/protodex/internal/ports"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*(.*?)\*/`)
	lineCommentRe  = regexp.MustCompile(`(?m)//(.*)$`)
)

// lookaheadWindow bounds how far past a comment we search for the declaration
// it annotates.
const lookaheadWindow = 200

// parseComments collects block and line comments, each labeled with a
// best-effort context: the first known interface or method name appearing
// shortly after the comment, a case-insensitive containment match against the
// comment text itself, or "general".
func parseComments(content string, names []string) []*ports.CommentRecord {
	var out []*ports.CommentRecord

	for _, re := range []*regexp.Regexp{blockCommentRe, lineCommentRe} {
		for _, loc := range re.FindAllStringSubmatchIndex(content, -1) {
			text := strings.TrimSpace(content[loc[2]:loc[3]])
			if text == "" {
				continue
			}
			out = append(out, &ports.CommentRecord{
				Text:    text,
				Context: commentContext(content, loc[1], text, names),
			})
		}
	}
	return out
}

// commentContext labels a comment with the declaration it most plausibly
// annotates. The primary signal is the first known name in the lookahead
// window after the comment; the fallback scans the comment text itself.
func commentContext(content string, end int, text string, names []string) string {
	limit := end + lookaheadWindow
	if limit > len(content) {
		limit = len(content)
	}
	window := content[end:limit]

	best, bestName := -1, ""
	for _, n := range names {
		if i := strings.Index(window, n); i >= 0 && (best < 0 || i < best) {
			best, bestName = i, n
		}
	}
	if bestName != "" {
		return bestName
	}

	lower := strings.ToLower(text)
	for _, n := range names {
		if strings.Contains(lower, strings.ToLower(n)) {
			return n
		}
	}
	return "general"
}
