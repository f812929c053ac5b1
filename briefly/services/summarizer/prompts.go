package summarizer

import (
	"fmt"

	"briefly/briefly/types"
)

const systemPrompt = "You are an expert summarizer producing clean, structured output."

const mapPromptFormat = `Summarize the following content in a %s. Highlight key points, important facts, or actionable items.

Content:
%s

Summary:
`

// The link-listing instruction here is advisory: the authoritative link
// list is produced locally by the links filter, never by the model.
const combinePromptFormat = `You are an expert summarizer. Combine the following text summaries into a single, well-structured, readable summary.
- Use headings for main topics
- Format as %s
- Keep it concise and easy to read
- Make it around %d words
- After the summary, list all **important URLs/links** found (ignore social media or irrelevant links)

Summaries:
%s

Final Structured Summary with Links:
`

func mapPrompt(style types.SummaryStyle, chunk string) string {
	return fmt.Sprintf(mapPromptFormat, style.Lower(), chunk)
}

func combinePrompt(style types.SummaryStyle, length int, joined string) string {
	return fmt.Sprintf(combinePromptFormat, style.Lower(), length, joined)
}
