package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"SolanaTradeBot/internal/services/analysis"

	openai "github.com/sashabaranov/go-openai"
)

// Service asks a language model for a qualitative market narrative with a
// recommended entry price. It is advisory only: callers must work without
// it, losing nothing but the narrative text.
type Service struct {
	client *openai.Client
	model  string
}

const systemPrompt = "You are a highly trained market analyst. You receive a structured " +
	"market snapshot containing realTimePrice, historicalData, orderBook, fundingRate, " +
	"tweets, news and an aggregate technical summary. Review all of it and recommend the " +
	"optimal entry price for a long position within the next 24 hours. Format your " +
	"response strictly as: 'entry_price: [number]', where [number] is the optimal entry price."

// ErrMissingAPIKey is returned when the service is constructed without credentials.
var ErrMissingAPIKey = errors.New("narrative: missing OpenAI API key")

var entryPricePattern = regexp.MustCompile(`"?entry_price"?\s*:\s*\$?(\d+(?:\.\d+)?)`)

// NewService builds the narrative client. A missing key is a configuration
// failure for this adapter only; callers should disable the enrichment.
func NewService(apiKey, model string) (*Service, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Service{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// GenerateNarrative sends the snapshot to the model and returns its text.
func (s *Service) GenerateNarrative(ctx context.Context, snapshot *analysis.MarketSnapshot) (string, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Here is the data: %s. Generate a trading strategy.", payload)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("no analysis generated")
	}
	return resp.Choices[0].Message.Content, nil
}

// ExtractEntryPrice pulls the recommended entry price out of the
// narrative text. The model is instructed to answer in the strict
// 'entry_price: [number]' format.
func ExtractEntryPrice(text string) (float64, error) {
	match := entryPricePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, errors.New("entry price not found in analysis")
	}
	price, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry price %q: %w", match[1], err)
	}
	return price, nil
}
