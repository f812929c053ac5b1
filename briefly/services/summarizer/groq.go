package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"briefly/briefly/types"
	"briefly/briefly/utils/logging"
)

type completionFunc func(ctx context.Context, prompt string) (string, error)

// GroqSummarizer runs the map-reduce pipeline against Groq's
// OpenAI-compatible chat completions endpoint. One attempt per request,
// no streaming; the combined summary comes back as a single string.
type GroqSummarizer struct {
	client     openai.Client
	model      string
	chunkChars int
	complete   completionFunc
}

type GroqConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	ChunkChars int
}

func NewGroq(cfg GroqConfig) *GroqSummarizer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	s := &GroqSummarizer{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(baseURL),
		),
		model:      model,
		chunkChars: cfg.ChunkChars,
	}
	s.complete = s.chatCompletion
	return s
}

// Summarize maps each content chunk to a partial summary, then reduces
// the partials into one final summary in the requested style and length.
func (s *GroqSummarizer) Summarize(
	ctx context.Context,
	docs []types.Document,
	opts types.UserOptions,
) (string, error) {
	defer logging.LogDuration(ctx, "summarize")()

	var chunks []string
	for _, doc := range docs {
		chunks = append(chunks, splitChunks(doc.Content, s.chunkChars)...)
	}
	if len(chunks) == 0 {
		return "", errors.New("nothing to summarize")
	}

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		partial, err := s.complete(ctx, mapPrompt(opts.Style, chunk))
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		partials = append(partials, partial)
	}

	combined, err := s.complete(ctx, combinePrompt(opts.Style, opts.Length, strings.Join(partials, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}

	combined = strings.TrimSpace(combined)
	if combined == "" {
		return "", errors.New("model returned an empty summary")
	}
	return combined, nil
}

func (s *GroqSummarizer) chatCompletion(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
