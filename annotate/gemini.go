package annotate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// geminiAttempts is the number of tries per image for transient failures.
const geminiAttempts = 3

// Gemini is an Annotator backed by the Gemini API.
type Gemini struct {
	APIKey string
	Model  string
}

// NewGemini creates a Gemini annotator. An empty model selects
// DefaultGeminiModel.
func NewGemini(apiKey, model string) *Gemini {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{
		APIKey: strings.TrimSpace(apiKey),
		Model:  model,
	}
}

// Annotate sends the image and the transcription prompt to the model and
// returns the annotated text. Transient failures are retried with a linear
// backoff before the last error is returned.
func (g *Gemini) Annotate(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	if g.APIKey == "" {
		return "", errors.New("gemini: API key is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini: creating client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(Prompt)},
	}

	parts := []genai.Part{
		genai.Text("Transcribe this image."),
		&genai.Blob{MIMEType: mimeType, Data: imageData},
	}

	var lastErr error
	for attempt := 1; attempt <= geminiAttempts; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 300 * time.Millisecond):
			}
			continue
		}
		text := firstText(resp)
		if text == "" {
			return "", errors.New("gemini: empty response")
		}
		return text, nil
	}
	return "", fmt.Errorf("gemini: %w", lastErr)
}

// firstText returns the first text part of the first non-empty candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
