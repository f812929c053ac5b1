package summarizer

import (
	"strings"
	"testing"
)

func TestSplitChunksCoversInput(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta ", 100)
	chunks := splitChunks(text, 120)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	joined := strings.Join(chunks, " ")
	if joined != strings.TrimSpace(strings.Join(strings.Fields(text), " ")) {
		t.Error("chunks do not reassemble into the input words")
	}

	for i, chunk := range chunks {
		if len(chunk) > 120 {
			t.Errorf("chunk %d is %d chars, over the limit", i, len(chunk))
		}
	}
}

func TestSplitChunksSingleOversizedWord(t *testing.T) {
	word := strings.Repeat("x", 50)
	chunks := splitChunks(word, 10)

	if len(chunks) != 1 || chunks[0] != word {
		t.Errorf("oversized word must form its own chunk, got %v", chunks)
	}
}

func TestSplitChunksEmptyInput(t *testing.T) {
	if chunks := splitChunks("   \n\t ", 100); chunks != nil {
		t.Errorf("expected nil for blank input, got %v", chunks)
	}
}

func TestSplitChunksSmallInputIsOneChunk(t *testing.T) {
	chunks := splitChunks("just a few words", 1000)
	if len(chunks) != 1 || chunks[0] != "just a few words" {
		t.Errorf("got %v, want one chunk with normalized text", chunks)
	}
}
