package summary

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

const systemPrompt = `Analyze the following transcript and provide:
1) A concise summary
2) Overall sentiment
3) Key points (5-7 bullet points)`

var (
	summaryLabel   = regexp.MustCompile(`(?i)^.*?summary:?\s*`)
	sentimentLabel = regexp.MustCompile(`(?i)^.*?sentiment:?\s*`)
	bulletPrefix   = regexp.MustCompile(`^[•\-\*\d\.\)\s]+`)
)

// SummarizationError is a language-model failure; it surfaces as HTTP 500.
type SummarizationError struct {
	Message string
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed: %s", e.Message)
}

// ChatCompleter is the slice of the OpenAI client the summarizer needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Summarizer asks a chat model for summary, sentiment and key points of a
// completed transcript.
type Summarizer struct {
	client ChatCompleter
	model  string
}

// NewSummarizer creates a summarizer. model defaults to GPT-4.
func NewSummarizer(client ChatCompleter, model string) *Summarizer {
	if model == "" {
		model = openai.GPT4
	}
	return &Summarizer{client: client, model: model}
}

// Summarize sends the transcript to the chat model and parses the free-text
// response. Parsing is defensive: a response with fewer sections than
// expected yields empty fields rather than failing.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (*model.Analysis, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return nil, &SummarizationError{Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return nil, &SummarizationError{Message: "no analysis received from model"}
	}
	return ParseAnalysis(resp.Choices[0].Message.Content), nil
}

// ParseAnalysis splits the model output into summary, sentiment and key
// point sections. The expected layout is three blank-line separated blocks;
// any section past the ones actually present is left empty.
func ParseAnalysis(text string) *model.Analysis {
	analysis := &model.Analysis{}

	sections := lo.Filter(strings.Split(text, "\n\n"), func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})

	if len(sections) > 0 {
		analysis.Summary = strings.TrimSpace(summaryLabel.ReplaceAllString(firstLineBlock(sections[0]), ""))
	}
	if len(sections) > 1 {
		analysis.Sentiment = strings.TrimSpace(sentimentLabel.ReplaceAllString(firstLineBlock(sections[1]), ""))
	}
	if len(sections) > 2 {
		lines := strings.Split(sections[2], "\n")
		points := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
			point := strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
			if point == "" || strings.EqualFold(strings.TrimSuffix(point, ":"), "key points") {
				return "", false
			}
			return point, true
		})
		analysis.KeyPoints = points
	}
	return analysis
}

// firstLineBlock drops a bare heading line (for example "Summary:") so the
// label regexp sees the content that follows it.
func firstLineBlock(section string) string {
	lines := strings.SplitN(strings.TrimSpace(section), "\n", 2)
	if len(lines) == 2 && strings.HasSuffix(strings.TrimSpace(lines[0]), ":") {
		return strings.TrimSpace(lines[1])
	}
	return strings.TrimSpace(section)
}
