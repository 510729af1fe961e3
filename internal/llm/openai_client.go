package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/trainwell/vitals-api/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical training and recovery assistant.

You receive the output of an analysis battery over one athlete's wearable data: a training readiness score with per-factor breakdown, a recovery score with per-factor breakdown, and per-night sleep quality scores with consistency and sleep-debt analysis. You must base your conclusions only on the provided data.

Your goals:
- Describe the athlete's current readiness and recovery state in clear, neutral language.
- Explain which factors are driving the scores up or down (HRV, sleep, resting heart rate, activity balance, sleep debt, strain).
- Relate sleep quality and sleep debt to the training recommendation.
- Give practical, behavioral suggestions for the next few days of training and recovery.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior: training load, rest days, sleep habits, wind-down routines.
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing readiness and recovery, naming the dominant factors.",
  "observations": [
    "3-6 bullet points about the factor breakdowns and sleep analysis.",
    "At least one item about the weakest factor.",
    "If sleep debt is present, one item about its size and trend."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about training load matching the recommendation.",
    "Include at least one suggestion about sleep if any sleep factor is below 60."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this athlete's analysis results.

- "readiness" holds a 0-100 training readiness score, a factor map (each factor also 0-100), and a four-level recommendation (go_hard, moderate, easy_day, rest).
- "recovery" holds a 0-100 recovery score, a factor map, and a four-level status.
- "sleep" holds per-night quality scores, a cross-night consistency score, and a sleep-debt analysis (current debt in minutes, trend, nights to recover).

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating training insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes an analysis result and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, analysis *domain.AnalysisResult) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate training insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, analysis *domain.AnalysisResult) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	analysisJSON, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize analysis: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(analysisJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
