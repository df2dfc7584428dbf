package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

const (
	maxOutputTokens = 1024
	defaultTemp     = 0.6
)

// systemInstruction keeps the assistant on study help for UES students
const systemInstruction = "Eres el asistente académico de UES Academic Helper. " +
	"Ayudas a estudiantes universitarios a organizar tareas, entender temas y preparar exámenes. " +
	"Responde en español, de forma breve y clara."

type ChatClient struct {
	client *genai.Client
	model  string
}

var _ ports.ChatModelPort = (*ChatClient)(nil)

func NewChatClient(ctx context.Context, apiKey, model string) (*ChatClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &ChatClient{client: client, model: model}, nil
}

func (c *ChatClient) Close() error {
	return c.client.Close()
}

func (c *ChatClient) configureModel(model *genai.GenerativeModel) {
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	model.Temperature = toPtr(float32(defaultTemp))
	model.MaxOutputTokens = toPtr(int32(maxOutputTokens))
}

func (c *ChatClient) Reply(ctx context.Context, message string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	c.configureModel(model)

	resp, err := model.GenerateContent(ctx, genai.Text(strings.ToValidUTF8(message, "")))
	if err != nil {
		logger.WarnContext(ctx, "Gemini request failed", "model", c.model, "error", err)
		return "", fmt.Errorf("gemini: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini response has no text parts")
	}
	return b.String(), nil
}

func toPtr[T any](v T) *T {
	return &v
}
