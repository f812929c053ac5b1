// Package summarizer produces a structured summary of acquired
// documents through a map-reduce pipeline over a remote language model.
package summarizer

import (
	"context"

	"briefly/briefly/types"
)

// Summarizer turns documents into one combined summary string honoring
// the user's style and length options.
type Summarizer interface {
	Summarize(ctx context.Context, docs []types.Document, opts types.UserOptions) (string, error)
}
