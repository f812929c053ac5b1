package loader

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"briefly/briefly/types"
	"briefly/briefly/utils/logging"
)

// Pages shorter than this after extraction are assumed to be bot walls
// or JS shells and retried through the rendered fetcher when available.
const minExtractedChars = 200

// RenderedFetcher fetches a page through a real browser engine.
type RenderedFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// WebLoader fetches a generic webpage with a browser user agent and
// extracts its readable text.
type WebLoader struct {
	client    *http.Client
	userAgent string
	rendered  RenderedFetcher
}

func NewWebLoader(client *http.Client, userAgent string, rendered RenderedFetcher) *WebLoader {
	return &WebLoader{
		client:    client,
		userAgent: userAgent,
		rendered:  rendered,
	}
}

func (l *WebLoader) Load(ctx context.Context, rawURL string) ([]types.Document, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	body, fetchErr := l.fetch(ctx, rawURL)

	var text string
	if fetchErr == nil {
		text = extractReadableText(body, pageURL)
	}

	if (fetchErr != nil || len(text) < minExtractedChars) && l.rendered != nil {
		renderedHTML, renderErr := l.rendered.Fetch(ctx, rawURL)
		if renderErr != nil {
			logging.AppLogger.Warn("rendered fetch failed",
				zap.String("url", rawURL),
				zap.Error(renderErr),
			)
		} else if rendered := extractReadableText([]byte(renderedHTML), pageURL); len(rendered) > len(text) {
			text = rendered
			fetchErr = nil
		}
	}

	if fetchErr != nil {
		return nil, fmt.Errorf("fetch page: %w", fetchErr)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no readable text at %s", rawURL)
	}

	return []types.Document{{Content: text, Source: rawURL}}, nil
}

func (l *WebLoader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// extractReadableText prefers readability's article extraction and falls
// back to a plain text walk of the DOM for pages readability rejects
// (index pages, dashboards, sparse documents).
func extractReadableText(body []byte, pageURL *url.URL) string {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err == nil {
		text := strings.TrimSpace(article.TextContent)
		if text != "" {
			if title := strings.TrimSpace(article.Title); title != "" {
				return title + "\n\n" + text
			}
			return text
		}
	}

	return strings.TrimSpace(pageTitle(body) + "\n\n" + extractText(body))
}

func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractText walks the DOM collecting text nodes, skipping script and
// style subtrees. Punctuation is kept intact: the link extractor runs
// over this text later.
func extractText(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				sb.WriteString(text)
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(sb.String())
}
