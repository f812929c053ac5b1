package loader

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kkdai/youtube/v2"
	"go.uber.org/zap"

	"briefly/briefly/types"
	"briefly/briefly/utils/logging"
)

// VideoLoader fetches structured metadata (and the transcript when a
// caption track exists) for a YouTube URL.
type VideoLoader struct {
	client youtube.Client
}

func NewVideoLoader(httpClient *http.Client) *VideoLoader {
	return &VideoLoader{
		client: youtube.Client{HTTPClient: httpClient},
	}
}

func (l *VideoLoader) Load(ctx context.Context, rawURL string) ([]types.Document, error) {
	video, err := l.client.GetVideoContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch video metadata: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(video.Title)
	sb.WriteString("\n")
	if video.Author != "" {
		sb.WriteString("By ")
		sb.WriteString(video.Author)
		sb.WriteString("\n")
	}
	if desc := strings.TrimSpace(video.Description); desc != "" {
		sb.WriteString("\n")
		sb.WriteString(desc)
		sb.WriteString("\n")
	}

	// Transcript is best effort: title and description alone are enough
	// to summarize from.
	if len(video.CaptionTracks) > 0 {
		lang := video.CaptionTracks[0].LanguageCode
		transcript, err := l.client.GetTranscriptCtx(ctx, video, lang)
		if err != nil {
			logging.AppLogger.Warn("transcript fetch failed",
				zap.String("url", rawURL),
				zap.String("lang", lang),
				zap.Error(err),
			)
		} else {
			sb.WriteString("\n")
			for _, segment := range transcript {
				sb.WriteString(segment.Text)
				sb.WriteString(" ")
			}
		}
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return nil, fmt.Errorf("video %s has no textual content", video.ID)
	}

	return []types.Document{{Content: content, Source: rawURL}}, nil
}
