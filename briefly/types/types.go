// briefly/types/types.go
package types

import (
	"fmt"
	"strings"
)

// Document is one unit of acquired text. Immutable once produced by a
// loader; discarded after the summary is generated.
type Document struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// SummaryStyle is the closed set of output formats the dashboard offers.
type SummaryStyle string

const (
	StyleBulletPoints SummaryStyle = "Bullet Points"
	StyleNumberedList SummaryStyle = "Numbered List"
	StyleParagraph    SummaryStyle = "Paragraph"
)

// ParseSummaryStyle matches a UI label case-insensitively.
// An empty string maps to the default bullet-point style.
func ParseSummaryStyle(s string) (SummaryStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bullet points":
		return StyleBulletPoints, nil
	case "numbered list":
		return StyleNumberedList, nil
	case "paragraph":
		return StyleParagraph, nil
	}
	return "", fmt.Errorf("unknown summary style: %q", s)
}

// Lower returns the style label the way prompt templates expect it.
func (s SummaryStyle) Lower() string {
	return strings.ToLower(string(s))
}

const (
	MinSummaryLength     = 100
	MaxSummaryLength     = 1000
	DefaultSummaryLength = 300
)

// UserOptions is the request-scoped summary configuration.
type UserOptions struct {
	Length    int
	Style     SummaryStyle
	ShowLinks bool
}

// ClampLength normalizes the target word count into the slider range,
// substituting the default for the zero value.
func ClampLength(n int) int {
	if n == 0 {
		return DefaultSummaryLength
	}
	if n < MinSummaryLength {
		return MinSummaryLength
	}
	if n > MaxSummaryLength {
		return MaxSummaryLength
	}
	return n
}

type SummarizeRequest struct {
	URL       string `json:"url"`
	Length    int    `json:"length,omitempty"`
	Style     string `json:"style,omitempty"`
	ShowLinks *bool  `json:"show_links,omitempty"` // Pointer: nil means "use default" (true)
}

type SummarizeResponse struct {
	Summary   string   `json:"summary"`
	Links     []string `json:"links"`
	WordCount int      `json:"word_count"`
	LinkCount int      `json:"link_count"`
	Source    string   `json:"source"`
}
