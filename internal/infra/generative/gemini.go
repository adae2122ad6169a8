package generative

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"
)

const (
	// DefaultGeminiBaseURL is the public Generative Language API.
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"

	// maxResponseBody bounds how much of an upstream body is read
	maxResponseBody = 4 << 20
)

// ErrEmptyResponse is returned when the backend answered without text.
var ErrEmptyResponse = service.ErrEmptyResponse

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMIMEType string   `json:"responseMimeType,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// geminiGenerator calls the generateContent REST endpoint with an API key
type geminiGenerator struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeminiGenerator creates a REST text generator
func NewGeminiGenerator(baseURL, model, apiKey string, timeout time.Duration, logger *slog.Logger) service.TextGenerator {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	return &geminiGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (g *geminiGenerator) Name() string {
	return "gemini"
}

// GenerateText sends one generateContent call and returns the first candidate text
func (g *geminiGenerator) GenerateText(ctx context.Context, req service.GenerationRequest) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      req.Config.Temperature,
			ResponseMIMEType: req.Config.ResponseMIMEType,
			Seed:             req.Config.Seed,
		},
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	endpoint := g.baseURL + "/" + url.PathEscape(g.model) + ":generateContent?key=" + url.QueryEscape(g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		// the URL carries the key, keep it out of the error
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return "", errors.Wrap(urlErr.Err, "gemini request failed")
		}

		return "", errors.Wrap(err, "gemini request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", errors.Wrap(err, "read gemini response")
	}

	var parsed geminiResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(raw))
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		g.logger.Warn("[Gemini] Non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("model", g.model),
		)

		return "", &service.GeneratorError{StatusCode: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return "", errors.Wrap(decodeErr, "decode gemini response")
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 ||
		parsed.Candidates[0].Content.Parts[0].Text == "" {
		return "", ErrEmptyResponse
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
