// Package ai provides the optional LLM-backed compatibility analyzer. It is
// an enrichment layer: the engine's heuristic report is the contract, and
// every failure path here surfaces as an error so the caller can fall back to
// it.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
)

var ErrEmptyResponse = errors.New("model returned no choices")

type Analyzer struct {
	client *openai.Client
	model  string
}

// New builds an analyzer for the given API key and model. baseURL overrides
// the default endpoint; pass "" to use the platform default.
func New(apiKey, baseURL, model string) *Analyzer {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &Analyzer{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// AnalyzeBuild asks the model for a full compatibility report over the build
// and parses it into the engine's report shape. Any transport, parse or
// validation failure is returned as an error; the analyzer never fabricates
// a partial verdict.
func (a *Analyzer) AnalyzeBuild(ctx context.Context, build map[string]*models.Listing) (*models.BuildReport, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(build)},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("compatibility analysis request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	report, err := parseReport(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	analyzed := 0
	for _, listing := range build {
		if listing != nil && listing.Title != "" {
			analyzed++
		}
	}
	report.ComponentsAnalyzed = analyzed

	return report, nil
}

func buildPrompt(build map[string]*models.Listing) string {
	var b strings.Builder
	b.WriteString("You are a PC building expert. Analyze the compatibility of these components and provide a detailed assessment.\n\nPC Build Components:\n")

	for category, listing := range build {
		if listing == nil || listing.Title == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n  - Name: %s\n  - Price: %s\n", strings.ToUpper(category), listing.Title, listing.Price)
		if listing.Snippet != "" {
			fmt.Fprintf(&b, "  - Description: %s\n", listing.Snippet)
		}
	}

	b.WriteString(`
Analyze CPU/motherboard socket compatibility, RAM type compatibility, power requirements and PSU sizing.

Respond with this JSON shape and nothing else:
{
  "build_status": "compatible|warning|incompatible",
  "compatibility_issues": [
    {"severity": "error|warning|info", "component1": "", "component2": "", "issue": "", "suggestion": "", "category": ""}
  ],
  "power_analysis": {"estimated_consumption": 0, "recommended_psu_wattage": 0, "explanation": ""},
  "summary": ""
}
`)
	return b.String()
}

// parseReport pulls the first JSON object out of the model output (models
// often wrap JSON in prose or code fences) and validates the status value.
func parseReport(text string) (*models.BuildReport, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in model response")
	}

	var report models.BuildReport
	if err := json.Unmarshal([]byte(text[start:end+1]), &report); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	switch report.BuildStatus {
	case models.StatusCompatible, models.StatusWarning, models.StatusIncompatible:
	default:
		return nil, fmt.Errorf("model returned invalid build status %q", report.BuildStatus)
	}

	if report.CompatibilityIssues == nil {
		report.CompatibilityIssues = []models.CompatibilityIssue{}
	}
	if report.Summary == "" {
		report.Summary = "AI analysis completed"
	}

	return &report, nil
}
