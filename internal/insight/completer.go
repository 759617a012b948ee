package insight

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// ChatCompleter 외부 텍스트 생성 서비스 호출 인터페이스
// 테스트에서는 가짜 구현으로 대체한다.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAICompleter OpenAI Chat Completions 기반 구현
type OpenAICompleter struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAICompleter OpenAI 클라이언트 생성
func NewOpenAICompleter(apiKey, model string, temperature float64) *OpenAICompleter {
	return &OpenAICompleter{
		client:      openai.NewClient(option.WithAPIKey(apiKey)),
		model:       model,
		temperature: temperature,
	}
}

// Complete 시스템/사용자 메시지로 모델을 한 번 호출하고 응답 본문을 반환
func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
