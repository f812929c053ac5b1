// Package loader acquires textual content for a submitted URL: a
// structured video-platform path with a yt-dlp fallback, and a generic
// webpage path with readability extraction.
package loader

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"briefly/briefly/types"
	"briefly/briefly/utils/logging"
)

// ErrNoContent reports that every acquisition path for a URL was
// exhausted without producing a document.
var ErrNoContent = errors.New("no content found")

// Loader turns a URL into zero or more text documents.
type Loader interface {
	Load(ctx context.Context, rawURL string) ([]types.Document, error)
}

// Acquirer dispatches a URL to the video or generic-webpage path and
// memoizes successful results for the life of the process.
type Acquirer struct {
	video    Loader
	fallback Loader
	web      Loader
	memo     *memoCache
	memoTTL  time.Duration
}

type Options struct {
	Video    Loader
	Fallback Loader
	Web      Loader

	CacheTTL        time.Duration
	CacheMaxEntries int
}

func New(opts Options) *Acquirer {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Acquirer{
		video:    opts.Video,
		fallback: opts.Fallback,
		web:      opts.Web,
		memo:     newMemoCache(opts.CacheMaxEntries),
		memoTTL:  ttl,
	}
}

// IsVideoURL classifies by host so that a generic page merely mentioning
// youtube.com in its query string stays on the webpage path.
func IsVideoURL(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "youtu.be" ||
		host == "youtube.com" ||
		strings.HasSuffix(host, ".youtube.com")
}

// Acquire returns the documents for a URL, trying the structured video
// loader before the yt-dlp fallback for video URLs, and the webpage
// loader otherwise. Exhausting every path yields ErrNoContent.
func (a *Acquirer) Acquire(ctx context.Context, rawURL string) ([]types.Document, error) {
	defer logging.LogDuration(ctx, "acquire")()

	now := time.Now()
	if docs, ok := a.memo.get(rawURL, now); ok {
		return docs, nil
	}

	docs, err := a.load(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoContent, rawURL)
	}

	a.memo.set(rawURL, docs, now.Add(a.memoTTL), now)
	return docs, nil
}

func (a *Acquirer) load(ctx context.Context, rawURL string) ([]types.Document, error) {
	if IsVideoURL(rawURL) {
		docs, err := a.video.Load(ctx, rawURL)
		if err == nil && len(docs) > 0 {
			return docs, nil
		}
		if err != nil {
			logging.AppLogger.Warn("video loader failed, trying yt-dlp",
				zap.String("url", rawURL),
				zap.Error(err),
			)
		}

		docs, fallbackErr := a.fallback.Load(ctx, rawURL)
		if fallbackErr != nil {
			logging.ErrorLogger.Error("video fallback failed",
				zap.String("url", rawURL),
				zap.Error(fallbackErr),
			)
			return nil, fmt.Errorf("%w: video extraction failed for %s", ErrNoContent, rawURL)
		}
		return docs, nil
	}

	docs, err := a.web.Load(ctx, rawURL)
	if err != nil {
		logging.ErrorLogger.Error("webpage loader failed",
			zap.String("url", rawURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: webpage extraction failed for %s", ErrNoContent, rawURL)
	}
	return docs, nil
}
