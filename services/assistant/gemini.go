// File: services/assistant/gemini.go
package assistant

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModelName = "gemini-1.5-flash"

// ModelClient is the slice of the language-model API the conversation loop
// needs: one content sequence in, one candidate content out.
type ModelClient interface {
	Generate(ctx context.Context, msgs []*genai.Content, withTools bool) (*genai.Content, error)
}

// GeminiClient implements ModelClient over the Gemini API.
type GeminiClient struct {
	client *genai.Client
	tools  []*genai.Tool
}

func NewGeminiClient(ctx context.Context, apiKey string, decls []*genai.FunctionDeclaration) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var tools []*genai.Tool
	if len(decls) > 0 {
		tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}
	return &GeminiClient{client: client, tools: tools}, nil
}

// Generate replays all but the last message as chat history and sends the
// last one. Tool schemas are attached only on the first call of a turn;
// the finalization call runs without them.
func (g *GeminiClient) Generate(ctx context.Context, msgs []*genai.Content, withTools bool) (*genai.Content, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("empty message sequence")
	}

	model := g.client.GenerativeModel(geminiModelName)
	model.SetTemperature(0.7)
	if withTools {
		model.Tools = g.tools
	}

	cs := model.StartChat()
	cs.History = msgs[:len(msgs)-1]

	resp, err := cs.SendMessage(ctx, msgs[len(msgs)-1].Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}
	return resp.Candidates[0].Content, nil
}
