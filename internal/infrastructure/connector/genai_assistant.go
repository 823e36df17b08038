package connector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/audits"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"google.golang.org/genai"
)

const defaultAssistantModel = "gemini-2.0-flash"

// genAIAssistant completes audit prompts with Gemini
type genAIAssistant struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  logger.Logger
}

// NewGenAIAssistant creates an Assistant backed by the Gemini API
func NewGenAIAssistant(ctx context.Context, settings *config.AssistantSettings, logger logger.Logger) (audits.Assistant, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := settings.Model
	if model == "" {
		model = defaultAssistantModel
	}
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &genAIAssistant{client: client, model: model, timeout: timeout, logger: logger}, nil
}

func (a *genAIAssistant) Complete(ctx context.Context, systemPrompt, prompt string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", "", apperror.Unavailable(err, "assistant request failed")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", "", apperror.Unavailable(fmt.Errorf("empty completion"), "assistant returned no findings")
	}

	model := a.model
	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}
	a.logger.Info("assistant completion", "model", model, "chars", len(text))
	return text, model, nil
}

type disabledAssistant struct{}

// NewDisabledAssistant creates an Assistant that always reports Unavailable
func NewDisabledAssistant() audits.Assistant {
	return disabledAssistant{}
}

func (disabledAssistant) Complete(context.Context, string, string) (string, string, error) {
	return "", "", apperror.Unavailable(nil, "the audit assistant is disabled")
}

// NewAssistant selects the Assistant for the configured provider
func NewAssistant(ctx context.Context, settings *config.AssistantSettings, logger logger.Logger) (audits.Assistant, error) {
	switch settings.Provider {
	case config.AssistantGenAI:
		return NewGenAIAssistant(ctx, settings, logger)
	case config.AssistantDisabled, "":
		return NewDisabledAssistant(), nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", settings.Provider)
	}
}
