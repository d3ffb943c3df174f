package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vfg2006/churn-analysis-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/internal/domain"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

const systemPrompt = `You are a senior customer retention analyst for a telecom company.
You receive aggregated churn analytics as JSON and respond ONLY with a JSON object
with the keys "insights" (a concise narrative string), "recommendations" (array of
actionable strings) and "key_findings" (array of short factual strings).`

type InsightGenerator interface {
	GenerateInsights(ctx context.Context, payload *domain.InsightPayload) (*domain.InsightResult, error)
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) InsightGenerator {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

// GenerateInsights envia o payload agregado ao modelo de linguagem e converte
// a resposta no formato consumido pela API
func (s *OpenAIService) GenerateInsights(ctx context.Context, payload *domain.InsightPayload) (*domain.InsightResult, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o payload de insights: %w", err)
	}

	request := &openaiclient.ChatCompletionRequest{
		Model:       s.cfg.OpenAI.Model,
		Temperature: 0.3,
		ResponseFormat: &openaiclient.ResponseFormat{
			Type: "json_object",
		},
		Messages: []openaiclient.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Analyze this churn data and produce insights:\n%s", encoded)},
		},
	}

	response, err := s.Client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar insights: %w", err)
	}

	result := &domain.InsightResult{}
	if err := json.Unmarshal([]byte(response.Choices[0].Message.Content), result); err != nil {
		log.ForContext(ctx).WithError(err).Error("insights: model returned non-JSON content")
		return nil, fmt.Errorf("erro ao decodificar a resposta do modelo: %w", err)
	}

	result.Metadata.GeneratedAt = time.Now().UTC()
	result.Metadata.ModelUsed = response.Model

	return result, nil
}
