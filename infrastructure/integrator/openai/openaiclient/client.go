package openaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/churn-analysis-api/internal/config"
	"github.com/vfg2006/churn-analysis-api/pkg/log"
)

type Client interface {
	CreateChatCompletion(ctx context.Context, request *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg: cfg,
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatCompletionChoice struct {
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
}

type apiErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateChatCompletion chama o endpoint de chat completions da OpenAI
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, request *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.cfg.OpenAI.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var envelope apiErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
			return nil, fmt.Errorf("openai retornou status %d: %s", resp.StatusCode, envelope.Error.Message)
		}
		return nil, fmt.Errorf("openai retornou status %d", resp.StatusCode)
	}

	var response ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("resposta da openai sem choices")
	}

	return &response, nil
}
