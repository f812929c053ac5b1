package loader

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"briefly/briefly/types"
)

// CommandRunner executes an external command and returns its stdout.
// Indirection exists so tests can stub the yt-dlp invocation.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// MetadataTool shells out to yt-dlp for title and description text when
// the structured video loader fails.
type MetadataTool struct {
	path string
	run  CommandRunner
}

func NewMetadataTool(path string) *MetadataTool {
	if path == "" {
		path = "yt-dlp"
	}
	return &MetadataTool{path: path, run: execRunner}
}

func (t *MetadataTool) Load(ctx context.Context, rawURL string) ([]types.Document, error) {
	out, err := t.run(ctx, t.path,
		"--no-warnings",
		"--skip-download",
		"--get-title",
		"--get-description",
		rawURL,
	)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", t.path, err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil, fmt.Errorf("%s produced no output for %s", t.path, rawURL)
	}

	return []types.Document{{Content: text, Source: rawURL}}, nil
}
