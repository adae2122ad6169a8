package generative

import (
	"context"
	"strings"

	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// VertexGenerator uses Vertex AI with application default or file credentials
type VertexGenerator struct {
	client *genai.Client
	model  string
}

// NewVertexGenerator creates a Vertex AI client for projectID in location
func NewVertexGenerator(ctx context.Context, projectID, location, credentialsFile, model string) (*VertexGenerator, error) {
	if projectID == "" || location == "" {
		return nil, errors.New("vertex provider requires projectId and location")
	}
	if model == "" {
		model = DefaultModel
	}

	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vertex client")
	}

	return &VertexGenerator{client: client, model: model}, nil
}

func (g *VertexGenerator) Name() string {
	return "vertex"
}

// GenerateText forwards temperature and MIME type; Vertex has no seed option here
func (g *VertexGenerator) GenerateText(ctx context.Context, req service.GenerationRequest) (string, error) {
	// a model value per call keeps concurrent requests from sharing settings
	model := g.client.GenerativeModel(g.model)
	if req.Config.Temperature != nil {
		model.SetTemperature(float32(*req.Config.Temperature))
	}
	model.ResponseMIMEType = req.Config.ResponseMIMEType

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", errors.Wrap(err, "vertex generate content")
	}

	return firstText(resp)
}

// Close releases the client connection
func (g *VertexGenerator) Close() error {
	return errors.WithStack(g.client.Close())
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
