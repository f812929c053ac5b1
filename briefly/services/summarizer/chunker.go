package summarizer

import "strings"

const defaultChunkChars = 12000

// splitChunks breaks text into word-boundary chunks of at most limit
// characters. Every input word lands in exactly one chunk; a single word
// longer than the limit becomes its own chunk rather than being cut.
func splitChunks(text string, limit int) []string {
	if limit <= 0 {
		limit = defaultChunkChars
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var sb strings.Builder
	for _, word := range words {
		if sb.Len() > 0 && sb.Len()+1+len(word) > limit {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(word)
	}
	if sb.Len() > 0 {
		chunks = append(chunks, sb.String())
	}

	return chunks
}
