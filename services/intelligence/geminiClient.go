// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staynest/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements TextGenerator on the Gemini API. One client serves
// every model of the fallback order.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

var harmCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

func blockThreshold(t SafetyThreshold) genai.HarmBlockThreshold {
	switch t {
	case SafetyBlockNone:
		return genai.HarmBlockNone
	case SafetyBlockMedium:
		return genai.HarmBlockMediumAndAbove
	default:
		return genai.HarmBlockOnlyHigh
	}
}

func safetySettings(t SafetyThreshold) []*genai.SafetySetting {
	threshold := blockThreshold(t)
	settings := make([]*genai.SafetySetting, 0, len(harmCategories))
	for _, c := range harmCategories {
		settings = append(settings, &genai.SafetySetting{Category: c, Threshold: threshold})
	}
	return settings
}

func toContents(history []models.ChatTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return contents
}

// Generate sends prompt to model as the last user turn after history.
func (g *GeminiClient) Generate(ctx context.Context, model string, history []models.ChatTurn, prompt string, opts GenerateOptions) (string, error) {
	m := g.client.GenerativeModel(model)
	if opts.MaxOutputTokens > 0 {
		m.SetMaxOutputTokens(opts.MaxOutputTokens)
	}
	m.SafetySettings = safetySettings(opts.Safety)

	cs := m.StartChat()
	cs.History = toContents(history)

	resp, err := cs.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Model: model, Kind: geminiErrorKind(err), Err: fmt.Errorf("gemini %s: %w", model, err)}
	}

	text := responseText(resp)
	if text == "" {
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
			return "", &ProviderError{Model: model, Kind: KindSafety, Err: fmt.Errorf("gemini %s: candidate blocked: SAFETY", model)}
		}
		return "", &ProviderError{Model: model, Kind: KindTransient, Err: ErrEmptyResponse}
	}
	return text, nil
}

func geminiErrorKind(err error) ErrorKind {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		if blocked.PromptFeedback != nil && blocked.PromptFeedback.BlockReason == genai.BlockReasonSafety {
			return KindSafety
		}
		if blocked.Candidate != nil && blocked.Candidate.FinishReason == genai.FinishReasonSafety {
			return KindSafety
		}
	}
	if strings.Contains(err.Error(), safetyMarker) {
		return KindSafety
	}
	return KindTransient
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String())
}
