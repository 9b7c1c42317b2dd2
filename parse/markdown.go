package parse

import (
	"regexp"
	"strings"
)

// CodeBlock is a fenced code block extracted from a response.
type CodeBlock struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

var codeBlockRe = regexp.MustCompile("(?s)```([a-zA-Z0-9_+-]*)[ \t]*\\n?(.*?)```")

// FirstCodeBlock returns the first fenced code block, optionally filtered by
// language tag. An empty lang matches any block. Blocks without a language
// tag report "text".
func FirstCodeBlock(response, lang string) (CodeBlock, bool) {
	for _, block := range CodeBlocks(response, lang) {
		return block, true
	}
	return CodeBlock{}, false
}

// CodeBlocks returns all fenced code blocks, optionally filtered by language
// tag. An empty lang matches any block.
func CodeBlocks(response, lang string) []CodeBlock {
	var blocks []CodeBlock
	for _, m := range codeBlockRe.FindAllStringSubmatch(response, -1) {
		language := m[1]
		if language == "" {
			language = "text"
		}
		if lang != "" && !strings.EqualFold(language, lang) {
			continue
		}
		blocks = append(blocks, CodeBlock{
			Code:     strings.TrimSpace(m[2]),
			Language: strings.ToLower(language),
		})
	}
	return blocks
}

var (
	headerMarkRe  = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	boldItalicRe  = regexp.MustCompile(`(\*{1,3}|_{1,3})(\S(?:.*?\S)?)(\*{1,3}|_{1,3})`)
	inlineCodeRe  = regexp.MustCompile("`([^`\n]*)`")
	linkRe        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	horizRuleRe   = regexp.MustCompile(`(?m)^[ \t]*(-{3,}|\*{3,}|_{3,})[ \t]*$`)
	bulletMarkRe  = regexp.MustCompile(`(?m)^[ \t]*[-*+•][ \t]+`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
	numberedRe    = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+(.+)$`)
	bulletItemRe  = regexp.MustCompile(`(?m)^[ \t]*[-*•][ \t]+(.+)$`)
	anyNonBlankRe = regexp.MustCompile(`(?m)^[ \t]*(\S.*)$`)
)

// StripMarkdown removes markdown syntax from a response, keeping the plain
// text. Fenced code blocks are dropped entirely; link text is kept while
// link targets are dropped.
func StripMarkdown(response string) string {
	s := codeBlockRe.ReplaceAllString(response, "")
	s = horizRuleRe.ReplaceAllString(s, "")
	s = headerMarkRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllString(s, "$1")
	s = boldItalicRe.ReplaceAllString(s, "$2")
	s = inlineCodeRe.ReplaceAllString(s, "$1")
	s = bulletMarkRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Sections splits a response into named segments using the given ordered
// header strings as boundaries. Matching is case-insensitive. Each header's
// segment runs to the next found header; the last found header captures to
// the end of the text. Headers not present in the response are omitted from
// the result.
func Sections(response string, headers []string) map[string]string {
	lower := strings.ToLower(response)

	type boundary struct {
		header string
		start  int // content start, after the header token
		pos    int // header position
	}

	var found []boundary
	searchFrom := 0
	for _, h := range headers {
		if h == "" {
			continue
		}
		idx := strings.Index(lower[searchFrom:], strings.ToLower(h))
		if idx < 0 {
			continue
		}
		pos := searchFrom + idx
		found = append(found, boundary{header: h, start: pos + len(h), pos: pos})
		searchFrom = pos + len(h)
	}

	sections := make(map[string]string, len(found))
	for i, b := range found {
		end := len(response)
		if i+1 < len(found) {
			end = found[i+1].pos
		}
		content := response[b.start:end]
		content = strings.TrimLeft(content, ":")
		sections[b.header] = strings.TrimSpace(content)
	}
	return sections
}

// ListItems extracts list items from a response. Numbered lists are tried
// first, then bulleted lists (-, *, •). If neither style matches, each
// non-blank line becomes an item.
func ListItems(response string) []string {
	for _, re := range []*regexp.Regexp{numberedRe, bulletItemRe, anyNonBlankRe} {
		matches := re.FindAllStringSubmatch(response, -1)
		if len(matches) == 0 {
			continue
		}
		items := make([]string, 0, len(matches))
		for _, m := range matches {
			items = append(items, strings.TrimSpace(m[1]))
		}
		return items
	}
	return nil
}

// KeyValues splits each line of a response at the first occurrence of sep
// (default ":"), skipping lines where either side is empty after trimming.
func KeyValues(response, sep string) map[string]string {
	if sep == "" {
		sep = ":"
	}

	kv := make(map[string]string)
	for _, line := range strings.Split(response, "\n") {
		idx := strings.Index(line, sep)
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+len(sep):])
		if key == "" || value == "" {
			continue
		}
		kv[key] = value
	}
	return kv
}
