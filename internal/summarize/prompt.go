package summarize

import "fmt"

// Prompt is the immutable system/user prompt pair for one request.
type Prompt struct {
	System string
	User   string
}

const systemPrompt = `You are an expert content summarizer. Your task is to create a detailed markdown summary of the webpage content.

Guidelines:
- Start with the website summary in 75 words - (Don't use the numeric terms "75 words" or "50 words" or "30 words" or "100 words" in the output)
- Make summary for each sub-headings about 30 words
- Focus strictly on the content.
- Do NOT use generic headers like "Executive Summary", "Introduction", or "Conclusion".
- The first line MUST be the title in this format: "Page Title - Brief Description" in h1 tag.
- Use professional markdown formatting (headers, lists, bold, italic).
- Organize information logically using ## for major sections and ### for subsections.
- Highlight important terms with **bold**.
- End with the conclusion in 50 words`

const userPromptFormat = `Please authorize a detailed markdown summary of the following webpage content:

%s

Structure the output as requested:
1. Title line: [Page Title] - [Brief Description]
2. Detailed summary content breakdown.

Provide the summary below:`

// BuildPrompt embeds the extracted page content into the fixed prompt
// templates. Pure and deterministic; only the content varies per call.
func BuildPrompt(content string) Prompt {
	return Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf(userPromptFormat, content),
	}
}
