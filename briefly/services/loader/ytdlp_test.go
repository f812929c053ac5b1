package loader

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestMetadataToolLoad(t *testing.T) {
	var gotName string
	var gotArgs []string

	tool := NewMetadataTool("yt-dlp")
	tool.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte("Some Video Title\nA long description.\n"), nil
	}

	docs, err := tool.Load(context.Background(), "https://youtu.be/abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if docs[0].Source != "https://youtu.be/abc" {
		t.Errorf("Source = %q, want original URL", docs[0].Source)
	}
	if docs[0].Content != "Some Video Title\nA long description." {
		t.Errorf("Content = %q", docs[0].Content)
	}

	if gotName != "yt-dlp" {
		t.Errorf("command = %q, want yt-dlp", gotName)
	}
	for _, flag := range []string{"--skip-download", "--get-title", "--get-description"} {
		if !slices.Contains(gotArgs, flag) {
			t.Errorf("args %v missing %s", gotArgs, flag)
		}
	}
	if gotArgs[len(gotArgs)-1] != "https://youtu.be/abc" {
		t.Errorf("last arg = %q, want the URL", gotArgs[len(gotArgs)-1])
	}
}

func TestMetadataToolCommandError(t *testing.T) {
	tool := NewMetadataTool("")
	tool.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}

	if _, err := tool.Load(context.Background(), "https://youtu.be/abc"); err == nil {
		t.Fatal("expected error when yt-dlp fails")
	}
}

func TestMetadataToolEmptyOutput(t *testing.T) {
	tool := NewMetadataTool("")
	tool.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("  \n "), nil
	}

	if _, err := tool.Load(context.Background(), "https://youtu.be/abc"); err == nil {
		t.Fatal("expected error on empty yt-dlp output")
	}
}
