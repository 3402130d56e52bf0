// File: services/assistant/assistant.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	"tripdesk/models"
	"tripdesk/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// System prompt defining the assistant's persona and capabilities.
const systemPrompt = "You are a friendly and highly capable flight and hotel booking assistant. " +
	"Your goal is to help users book tickets by gathering necessary information and using available tools. " +
	"Always start by introducing yourself briefly."

// initialGreeting is the model's synthetic opening turn for a fresh
// conversation, so history replay stays consistent across later turns.
const initialGreeting = "Hello! I'm your booking assistant. How can I help you today?"

// apologyReply is the one user-visible message for any orchestration failure.
const apologyReply = "Sorry, I encountered an error. Please try again."

const (
	roleUser  = "user"
	roleModel = "model"
	roleTool  = "tool"
)

// DefaultService is the production conversation loop.
type DefaultService struct {
	Model  ModelClient
	Tools  *Registry
	Speech Announcer
}

// Chat executes one turn. Within the turn: assemble the message sequence,
// let the model answer or request a tool, execute a requested tool against
// the backend, feed the result back for finalization, and speak the reply.
// Every failure is caught here and collapsed into the fixed apology.
func (s *DefaultService) Chat(ctx context.Context, message string, history []models.ChatTurn) string {
	logger := utils.GetLogger()

	msgs := buildMessages(message, history)

	first, err := s.Model.Generate(ctx, msgs, true)
	if err != nil {
		logger.Error("Assistant turn failed on first model call", zap.Error(err))
		return apologyReply
	}

	fc, hasCall := functionCall(first)
	if !hasCall {
		text, err := contentText(first)
		if err != nil {
			logger.Error("Assistant turn produced no usable reply", zap.Error(err))
			return apologyReply
		}
		s.Speech.Announce(text)
		return text
	}

	tool, found := s.Tools.Lookup(fc.Name)
	if !found {
		// Terminal for this turn: no retry, no second model call.
		logger.Warn("Model requested unknown tool", zap.String("tool", fc.Name))
		return fmt.Sprintf("Error: Tool '%s' not found.", fc.Name)
	}

	logger.Info("Tool call requested", zap.String("tool", fc.Name), zap.Any("args", fc.Args))
	result, err := tool.Execute(ctx, fc.Args)
	if err != nil {
		logger.Error("Tool execution failed", zap.String("tool", fc.Name), zap.Error(err))
		return apologyReply
	}

	// The model's tool-call turn and the tool's response turn both go back,
	// so finalization sees the full exchange.
	msgs = append(msgs, first)
	msgs = append(msgs, &genai.Content{
		Role: roleTool,
		Parts: []genai.Part{genai.FunctionResponse{
			Name: fc.Name,
			Response: map[string]any{
				"status_code": 200,
				"body":        result,
			},
		}},
	})

	second, err := s.Model.Generate(ctx, msgs, false)
	if err != nil {
		logger.Error("Assistant turn failed on finalization call", zap.Error(err))
		return apologyReply
	}
	text, err := contentText(second)
	if err != nil {
		logger.Error("Finalization produced no usable reply", zap.Error(err))
		return apologyReply
	}

	s.Speech.Announce(text)
	return text
}

// buildMessages assembles the outgoing sequence: system prompt, the synthetic
// greeting when the conversation is new, every prior exchange in order, then
// the new user message. Identical inputs assemble identical sequences.
func buildMessages(message string, history []models.ChatTurn) []*genai.Content {
	msgs := []*genai.Content{textContent(roleUser, systemPrompt)}

	if len(history) == 0 {
		msgs = append(msgs, textContent(roleModel, initialGreeting))
	}
	for _, turn := range history {
		msgs = append(msgs, textContent(roleUser, turn.User))
		if turn.Assistant != "" {
			msgs = append(msgs, textContent(roleModel, turn.Assistant))
		}
	}

	return append(msgs, textContent(roleUser, message))
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{Role: role, Parts: []genai.Part{genai.Text(text)}}
}

// functionCall returns the first function-call part of a model response.
func functionCall(content *genai.Content) (genai.FunctionCall, bool) {
	for _, part := range content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			return fc, true
		}
	}
	return genai.FunctionCall{}, false
}

// contentText concatenates the text parts of a model response. A reply with
// no text at all is an error to report, not a silent no-op.
func contentText(content *genai.Content) (string, error) {
	var sb strings.Builder
	for _, part := range content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("model response contained no text")
	}
	return sb.String(), nil
}
