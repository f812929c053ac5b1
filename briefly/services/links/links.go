// Package links extracts URLs from acquired document text and filters
// out social-media noise before display.
package links

import (
	"fmt"
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
)

// Social-media hosts never worth surfacing in a "important links" list.
var defaultDenylist = []string{
	"facebook.com",
	"instagram.com",
	"twitter.com",
	"linkedin.com",
	"youtube.com",
}

// URL pattern matches routinely swallow sentence punctuation.
const trailingPunct = ".,)"

type Filter struct {
	denylist []string
	matcher  *regexp.Regexp
}

// NewFilter builds a Filter with the built-in denylist plus any
// site-local additions from configuration.
func NewFilter(extra ...string) (*Filter, error) {
	matcher, err := xurls.StrictMatchingScheme("https?://")
	if err != nil {
		return nil, fmt.Errorf("create URL matcher: %w", err)
	}

	denylist := make([]string, 0, len(defaultDenylist)+len(extra))
	denylist = append(denylist, defaultDenylist...)
	for _, d := range extra {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			denylist = append(denylist, d)
		}
	}

	return &Filter{denylist: denylist, matcher: matcher}, nil
}

// Extract scans free text for http/https URLs, in order of appearance.
// Duplicates are kept; callers decide whether to deduplicate.
func (f *Filter) Extract(text string) []string {
	return f.matcher.FindAllString(text, -1)
}

// Filter drops denylisted URLs and strips trailing sentence punctuation
// from the survivors. Order is preserved. Pure: the input slice is not
// modified.
func (f *Filter) Filter(urls []string) []string {
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if f.denied(u) {
			continue
		}
		filtered = append(filtered, strings.TrimRight(u, trailingPunct))
	}
	return filtered
}

func (f *Filter) denied(u string) bool {
	lower := strings.ToLower(u)
	for _, d := range f.denylist {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}
