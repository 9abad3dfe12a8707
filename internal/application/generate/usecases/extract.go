package usecases

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonArrayPattern   = regexp.MustCompile(`(?s)\[.*\]`)
	leadingListMarkers = regexp.MustCompile(`^["'\d.)\-]+\s*`)
	trailingQuote      = regexp.MustCompile(`["']$`)
	bareWordPattern    = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	wordSplitPattern   = regexp.MustCompile(`[\s,\n]+`)
	commaSplitPattern  = regexp.MustCompile(`[,\n]+`)
)

// extractStringList pulls a list of strings out of a model reply. Models are
// asked for a JSON array but do not always comply, so there are two
// fallbacks: numbered or quoted lines, then the whole reply as one item.
func extractStringList(content string) []string {
	if match := jsonArrayPattern.FindString(content); match != "" {
		var items []string
		if err := json.Unmarshal([]byte(match), &items); err == nil {
			return items
		}
		return []string{strings.TrimSpace(content)}
	}

	var items []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = leadingListMarkers.ReplaceAllString(line, "")
		line = trailingQuote.ReplaceAllString(line, "")
		// Short lines are list scaffolding, not generated content.
		if len(line) > 10 {
			items = append(items, line)
		}
	}
	if len(items) == 0 {
		return []string{strings.TrimSpace(content)}
	}
	return items
}

// extractHashtagWords pulls raw hashtag words out of a model reply. Unlike
// the general extractor, the delimiter fallback splits on commas and the last
// resort strips each token down to alphanumerics.
func extractHashtagWords(content string) []string {
	if match := jsonArrayPattern.FindString(content); match != "" {
		var items []string
		if err := json.Unmarshal([]byte(match), &items); err == nil {
			return items
		}
		var words []string
		for _, w := range wordSplitPattern.Split(content, -1) {
			w = bareWordPattern.ReplaceAllString(strings.TrimPrefix(strings.TrimSpace(w), "#"), "")
			if w != "" {
				words = append(words, w)
			}
		}
		return words
	}

	cleaned := strings.NewReplacer("[", "", "]", "", `"`, "", "'", "").Replace(content)
	var tags []string
	for _, t := range commaSplitPattern.Split(cleaned, -1) {
		t = strings.TrimPrefix(strings.TrimSpace(t), "#")
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// formatHashtags normalizes raw words into at most count wire-format tags:
// lowercased, inner whitespace removed, prefixed with #.
func formatHashtags(words []string, count int) []string {
	if len(words) > count {
		words = words[:count]
	}
	tags := make([]string, 0, len(words))
	for _, w := range words {
		tags = append(tags, "#"+whitespacePattern.ReplaceAllString(strings.ToLower(w), ""))
	}
	return tags
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
