package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const modelName = "gemini-1.5-flash"

// ChatTurn is one prior message in a chatbot conversation. Role is "user"
// or "model".
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type Service struct {
	client *genai.Client
}

func NewService(ctx context.Context, apiKey string) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Service{client: client}, nil
}

func (s *Service) Close() error {
	return s.client.Close()
}

// WorkoutPlan returns a generated 7-day workout plan, or a canned apology
// when generation fails.
func (s *Service) WorkoutPlan(ctx context.Context, req WorkoutPlanRequest) string {
	out, err := s.generate(ctx, workoutPrompt(req))
	if err != nil {
		log.Printf("workout plan generation failed: %v", err)
		return workoutFallback
	}
	return out
}

func (s *Service) DietPlan(ctx context.Context, req DietPlanRequest) string {
	out, err := s.generate(ctx, dietPrompt(req))
	if err != nil {
		log.Printf("diet plan generation failed: %v", err)
		return dietFallback
	}
	return out
}

func (s *Service) MotivationalQuote(ctx context.Context) string {
	out, err := s.generate(ctx, quotePrompt)
	if err != nil {
		log.Printf("quote generation failed: %v", err)
		return quoteFallback
	}
	return strings.TrimSpace(out)
}

// Chat answers a fitness question, carrying the prior turns as history.
func (s *Service) Chat(ctx context.Context, message string, history []ChatTurn) string {
	model := s.client.GenerativeModel(modelName)
	cs := model.StartChat()
	cs.History = make([]*genai.Content, 0, len(history)+1)
	cs.History = append(cs.History, &genai.Content{
		Role:  "model",
		Parts: []genai.Part{genai.Text(chatGreeting)},
	})
	for _, turn := range history {
		role := turn.Role
		if role != "user" {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		log.Printf("chat generation failed: %v", err)
		return chatFallback
	}
	out := responseText(resp)
	if out == "" {
		return chatFallback
	}
	return out
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	model := s.client.GenerativeModel(modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	out := responseText(resp)
	if out == "" {
		return "", fmt.Errorf("empty response")
	}
	return out, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String()
}
