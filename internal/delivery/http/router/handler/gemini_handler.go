package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/delivery/http/response"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultProxyTemperature = 0.1
	defaultProxyMIMEType    = "text/plain"
)

// GeminiHandlerParams holds dependencies for GeminiHandler, injected by Fx.
type GeminiHandlerParams struct {
	fx.In

	GenerativeUC usecase.GenerativeUsecase
	Logger       *slog.Logger
}

// GeminiHandler proxies prompts to the generative backend
type GeminiHandler struct {
	generativeUC usecase.GenerativeUsecase
	logger       *slog.Logger
}

// NewGeminiHandler is the constructor for GeminiHandler
func NewGeminiHandler(params GeminiHandlerParams) *GeminiHandler {
	return &GeminiHandler{
		generativeUC: params.GenerativeUC,
		logger:       params.Logger,
	}
}

// GeminiRequest is the body of POST /api/gemini
type GeminiRequest struct {
	Prompt string `json:"prompt"`
	Config struct {
		Temperature      *float64 `json:"temperature"`
		ResponseMIMEType string   `json:"responseMimeType"`
		Seed             *int64   `json:"seed"`
	} `json:"config"`
}

// GeminiResponse is the success body of POST /api/gemini
type GeminiResponse struct {
	Text string `json:"text"`
}

// Gemini serves the proxy endpoint of existing clients
func (h *GeminiHandler) Gemini(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodOptions:
		return c.NoContent(http.StatusNoContent)
	case http.MethodPost:
		return h.generate(c)
	default:
		return response.Compat(c, http.StatusMethodNotAllowed, response.CompatError{Error: "Method not allowed"})
	}
}

func (h *GeminiHandler) generate(c echo.Context) error {
	var req GeminiRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.Compat(c, http.StatusInternalServerError, response.CompatError{
			Error:   "API request failed",
			Message: err.Error(),
		})
	}

	temperature := defaultProxyTemperature
	if req.Config.Temperature != nil {
		temperature = *req.Config.Temperature
	}
	mimeType := req.Config.ResponseMIMEType
	if mimeType == "" {
		mimeType = defaultProxyMIMEType
	}

	text, err := h.generativeUC.Generate(c.Request().Context(), service.GenerationRequest{
		Prompt: req.Prompt,
		Config: service.GenerationConfig{
			Temperature:      &temperature,
			Seed:             req.Config.Seed,
			ResponseMIMEType: mimeType,
		},
	})
	if err != nil {
		return h.failure(c, err)
	}

	return c.JSON(http.StatusOK, GeminiResponse{Text: text})
}

func (h *GeminiHandler) failure(c echo.Context, err error) error {
	var genErr *service.GeneratorError

	switch {
	case errors.Is(err, domainerrors.ErrPromptMissing):
		return response.Compat(c, http.StatusBadRequest, response.CompatError{Error: "Missing prompt"})

	case errors.Is(err, domainerrors.ErrGeneratorNotConfigured):
		return response.Compat(c, http.StatusInternalServerError, response.CompatError{Error: "Missing GEMINI_API_KEY"})

	case errors.As(err, &genErr):
		status := genErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}

		return response.Compat(c, status, response.CompatError{
			Error:   "Gemini API request failed",
			Details: genErr.Message,
		})

	case errors.Is(err, service.ErrEmptyResponse):
		return response.Compat(c, http.StatusInternalServerError, response.CompatError{Error: "Empty response from model"})

	default:
		deliverycontext.Logger(c.Request().Context(), h.logger).Error("Gemini proxy error", slog.Any("error", err))

		return response.Compat(c, http.StatusInternalServerError, response.CompatError{
			Error:   "API request failed",
			Message: err.Error(),
		})
	}
}
