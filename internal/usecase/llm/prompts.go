package llm

import (
	"fmt"
	"strings"
)

// ReviewSummaryPrompt asks for the key points and overall sentiment across a
// book's reviews.
func ReviewSummaryPrompt(title string, reviews []string) string {
	var sb strings.Builder
	for _, r := range reviews {
		sb.WriteString("- " + r + "\n")
	}

	return fmt.Sprintf(`Summarize the key points and overall sentiment from these reviews of the book %q:

Reviews:
%s
Summary:`, title, sb.String())
}

// TextSummaryPrompt asks for a concise one-paragraph summary of free text.
func TextSummaryPrompt(text string) string {
	return fmt.Sprintf(`Please provide a concise, one-paragraph summary (around 50-100 words) of the following text:

"""
%s
"""

Summary:`, text)
}

// RecommendationPrompt asks for a short pitch over a list of candidate books.
func RecommendationPrompt(titles []string) string {
	var sb strings.Builder
	for _, t := range titles {
		sb.WriteString("- " + t + "\n")
	}

	return fmt.Sprintf(`A reader is choosing a book. In two or three sentences, recommend one or two titles from this list and say why:

%s
Recommendation:`, sb.String())
}
