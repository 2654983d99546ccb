package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sashabaranov/go-openai"
)

type IChatGPT interface {
	Chat(ctx context.Context, userMessage string) (string, error)
	DescribePart(ctx context.Context, structure string) (map[string]interface{}, error)
}

type chatGPTService struct {
	client *openai.Client
	model  string
}

const tutorPrompt = `You are an anatomy tutor helping students explore the bones of the hand, arm and skull.
Answer clearly and concisely. When a question is outside human anatomy, say so briefly.`

const partPrompt = `You are an expert medical anatomy instructor. Provide detailed information about the following bone/anatomical structure:

Structure: %s

Provide information in JSON format with these fields:
- name: The anatomical name
- location: Where it's located in the body
- function: What it does
- connections: What it connects to
- clinicalNotes: Common injuries or clinical relevance

Be concise but informative.`

func NewChatGPT() (IChatGPT, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &chatGPTService{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (c *chatGPTService) Chat(ctx context.Context, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: tutorPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userMessage},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from ChatGPT")
	}

	return resp.Choices[0].Message.Content, nil
}

// DescribePart asks for a JSON document about one structure. Output that is
// not a JSON object is wrapped as {name, description}.
func (c *chatGPTService) DescribePart(ctx context.Context, structure string) (map[string]interface{}, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a highly accurate anatomy expert. Always respond with valid JSON.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(partPrompt, structure),
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from ChatGPT")
	}

	return ParsePartDocument(structure, resp.Choices[0].Message.Content), nil
}

func ParsePartDocument(structure, content string) map[string]interface{} {
	doc := map[string]interface{}{}
	if err := jsoniter.Unmarshal([]byte(strings.TrimSpace(content)), &doc); err != nil || len(doc) == 0 {
		return map[string]interface{}{
			"name":        structure,
			"description": content,
		}
	}
	return doc
}
