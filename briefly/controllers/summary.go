// briefly/controllers/summary.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"briefly/briefly/services/links"
	"briefly/briefly/services/summarizer"
	"briefly/briefly/types"
	"briefly/briefly/utils/logging"
)

var (
	ErrEmptyURL   = errors.New("please enter a YouTube or website URL")
	ErrInvalidURL = errors.New("invalid URL format, please provide a valid URL")

	ErrInvalidOptions = errors.New("invalid summary options")
)

// Acquirer is the content acquisition contract the controller depends
// on; satisfied by loader.Acquirer.
type Acquirer interface {
	Acquire(ctx context.Context, rawURL string) ([]types.Document, error)
}

// SummaryController drives the acquire → filter → summarize pipeline for
// one submitted URL.
type SummaryController struct {
	acquirer   Acquirer
	links      *links.Filter
	summarizer summarizer.Summarizer
}

func NewSummaryController(
	acquirer Acquirer,
	linkFilter *links.Filter,
	s summarizer.Summarizer,
) *SummaryController {
	return &SummaryController{
		acquirer:   acquirer,
		links:      linkFilter,
		summarizer: s,
	}
}

// Summarize validates the request, acquires the documents, extracts and
// filters links, and produces the combined summary with its stats.
// Validation failures never reach the acquirer.
func (c *SummaryController) Summarize(
	ctx context.Context,
	req types.SummarizeRequest,
) (*types.SummarizeResponse, error) {
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}
	if !validURL(rawURL) {
		return nil, ErrInvalidURL
	}

	style, err := types.ParseSummaryStyle(req.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, err)
	}
	opts := types.UserOptions{
		Length:    types.ClampLength(req.Length),
		Style:     style,
		ShowLinks: req.ShowLinks == nil || *req.ShowLinks,
	}

	docs, err := c.acquirer.Acquire(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(docs))
	for _, doc := range docs {
		contents = append(contents, doc.Content)
	}
	allText := strings.Join(contents, " ")

	pageLinks := c.links.Extract(allText)
	if opts.ShowLinks {
		pageLinks = c.links.Filter(pageLinks)
	}

	summary, err := c.summarizer.Summarize(ctx, docs, opts)
	if err != nil {
		return nil, fmt.Errorf("summarization failed: %w", err)
	}

	resp := &types.SummarizeResponse{
		Summary:   summary,
		Links:     pageLinks,
		WordCount: len(strings.Fields(summary)),
		LinkCount: len(pageLinks),
		Source:    rawURL,
	}

	logging.RequestLogger.Info("summary produced",
		zap.String("url", rawURL),
		zap.Int("documents", len(docs)),
		zap.Int("word_count", resp.WordCount),
		zap.Int("link_count", resp.LinkCount),
	)
	return resp, nil
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
