package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nutriplan/config"
	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/delivery/http/router"
	"nutriplan/internal/delivery/http/router/handler"
	"nutriplan/internal/domain/catalog"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/profile"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/infra/metrics"
	"nutriplan/internal/usecase"
	mockUC "nutriplan/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo       *echo.Echo
	planner    *mockUC.MockPlannerUsecase
	cache      *mockUC.MockPlanCacheUsecase
	generative *mockUC.MockGenerativeUsecase
	nutrition  *mockUC.MockNutritionUsecase
	metrics    *metrics.Metrics
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second

	f := &serverFixture{
		planner:    mockUC.NewMockPlannerUsecase(t),
		cache:      mockUC.NewMockPlanCacheUsecase(t),
		generative: mockUC.NewMockGenerativeUsecase(t),
		nutrition:  mockUC.NewMockNutritionUsecase(t),
		metrics:    metrics.New(),
	}

	f.echo = NewEcho(cfg, logger, router.RouterParams{
		NutritionHandler: handler.NewNutritionHandler(handler.NutritionHandlerParams{NutritionUC: f.nutrition}),
		PlanHandler: handler.NewPlanHandler(handler.PlanHandlerParams{
			PlannerUC: f.planner,
			CacheUC:   f.cache,
			Logger:    logger,
		}),
		GeminiHandler: handler.NewGeminiHandler(handler.GeminiHandlerParams{
			GenerativeUC: f.generative,
			Logger:       logger,
		}),
		Metrics: f.metrics,
		Config:  cfg,
	})

	return f
}

func (f *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealthCheck_RequestID(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-7")
	rec = httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	assert.Equal(t, "client-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newServerFixture(t)
	f.metrics.IncPlansStored()

	rec := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nutriplan_plans_stored_total 1")
}

func TestPlans_PostWithoutPlan(t *testing.T) {
	f := newServerFixture(t)

	f.cache.EXPECT().Save(mock.Anything, mock.Anything, "abc").Return(nil, domainerrors.ErrPlanMissing).Once()

	rec := f.do(http.MethodPost, "/api/plans", `{"hash":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing plan"}`, rec.Body.String())
}

func TestPlans_PostStoresPlan(t *testing.T) {
	f := newServerFixture(t)
	fp := "304234324"
	created := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	f.cache.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(p json.RawMessage) bool {
			return strings.Contains(string(p), `"title":"Woche"`)
		}), fp).
		Return(&entity.PlanRecord{ID: 1, CreatedAt: created, Fingerprint: &fp, Payload: json.RawMessage(`{"title":"Woche"}`)}, nil).
		Once()

	rec := f.do(http.MethodPost, "/api/plans", `{"plan":{"title":"Woche"},"hash":"304234324"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"created_at":"2026-10-14T08:00:00Z","profile_hash":"304234324","plan_data":{"title":"Woche"}}`,
		rec.Body.String())
}

func TestPlans_GetLatest(t *testing.T) {
	f := newServerFixture(t)

	f.cache.EXPECT().Latest(mock.Anything, "").Return(nil, nil).Once()
	rec := f.do(http.MethodGet, "/api/plans", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	f.cache.EXPECT().Latest(mock.Anything, "h1").Return(json.RawMessage(`{"title":"x"}`), nil).Once()
	rec = f.do(http.MethodGet, "/.netlify/functions/plans?hash=h1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"title":"x"}`, rec.Body.String())
}

func TestPlans_StoreFailureAndMethod(t *testing.T) {
	f := newServerFixture(t)

	f.cache.EXPECT().Latest(mock.Anything, "").Return(nil, domainerrors.ErrStoreNotConfigured).Once()
	rec := f.do(http.MethodGet, "/api/plans", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Missing DATABASE_URL"}`, rec.Body.String())

	rec = f.do(http.MethodDelete, "/api/plans", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/plans", `{"plan":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGemini_Proxy(t *testing.T) {
	f := newServerFixture(t)

	f.generative.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(req service.GenerationRequest) bool {
			return req.Prompt == "Hallo" &&
				req.Config.Temperature != nil && *req.Config.Temperature == 0.1 &&
				req.Config.ResponseMIMEType == "text/plain"
		})).
		Return("Servus", nil).
		Once()

	rec := f.do(http.MethodPost, "/api/gemini", `{"prompt":"Hallo"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"Servus"}`, rec.Body.String())

	rec = f.do(http.MethodOptions, "/.netlify/functions/gemini", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodGet, "/api/gemini", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGemini_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "missing prompt",
			err:    domainerrors.ErrPromptMissing,
			status: http.StatusBadRequest,
			body:   `{"error":"Missing prompt"}`,
		},
		{
			name:   "unconfigured",
			err:    errors.WithStack(domainerrors.ErrGeneratorNotConfigured),
			status: http.StatusInternalServerError,
			body:   `{"error":"Missing GEMINI_API_KEY"}`,
		},
		{
			name:   "upstream status",
			err:    &service.GeneratorError{StatusCode: http.StatusTooManyRequests, Message: "quota exceeded"},
			status: http.StatusTooManyRequests,
			body:   `{"error":"Gemini API request failed","details":"quota exceeded"}`,
		},
		{
			name:   "empty response",
			err:    service.ErrEmptyResponse,
			status: http.StatusInternalServerError,
			body:   `{"error":"Empty response from model"}`,
		},
		{
			name:   "transport",
			err:    errors.New("dial tcp: timeout"),
			status: http.StatusInternalServerError,
			body:   `{"error":"API request failed","message":"dial tcp: timeout"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)
			f.generative.EXPECT().Generate(mock.Anything, mock.Anything).Return("", tt.err).Once()

			rec := f.do(http.MethodPost, "/api/gemini", `{"prompt":"x","config":{"temperature":0.7}}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestGeneratePlan(t *testing.T) {
	f := newServerFixture(t)
	plan := &entity.WeeklyPlan{Title: "Energie-Woche"}

	f.planner.EXPECT().
		CreatePlan(mock.Anything, mock.MatchedBy(func(in profile.Input) bool {
			return in.Goal == "energy" && in.Age != nil && *in.Age == 30
		})).
		Return(&usecase.PlanResult{Plan: plan, Fingerprint: "304234324"}, nil).
		Once()

	rec := f.do(http.MethodPost, "/api/plans/generate",
		`{"age":30,"gender":"female","lifeStage":"adult","goal":"energy","weight":70,"duration":4,"language":"de"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result usecase.PlanResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.Equal(t, plan, result.Plan)
	assert.Equal(t, "304234324", result.Fingerprint)
	assert.False(t, result.Cached)
}

func TestGeneratePlan_ValidationFailure(t *testing.T) {
	f := newServerFixture(t)

	f.planner.EXPECT().CreatePlan(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "age", Message: "Age must be between 5 and 120 years"},
			{Field: "lifeStage", Message: `Life stage "adult" is only valid for ages >= 18`},
		})).
		Once()

	rec := f.do(http.MethodPost, "/api/plans/generate", `{"age":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, `Age must be between 5 and 120 years, Life stage "adult" is only valid for ages >= 18`, env.Error.Message)
	assert.JSONEq(t,
		`[{"field":"age","message":"Age must be between 5 and 120 years"},{"field":"lifeStage","message":"Life stage \"adult\" is only valid for ages >= 18"}]`,
		string(env.Error.Details))
}

func TestGeneratePlan_GenerationFailureHidesDetails(t *testing.T) {
	f := newServerFixture(t)

	f.planner.EXPECT().CreatePlan(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewGenerationError(errors.New("upstream 503"))).
		Once()

	rec := f.do(http.MethodPost, "/api/plans/generate", `{}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "GENERATION_FAILED", env.Error.Code)
	assert.Equal(t, "Plan generation failed", env.Error.Message)
	assert.Empty(t, env.Error.Details)
}

func TestLatestPlan(t *testing.T) {
	f := newServerFixture(t)

	f.planner.EXPECT().LatestPlan(mock.Anything, entity.LanguageEN, 6).Return(nil).Once()

	rec := f.do(http.MethodGet, "/api/plans/latest?lang=en&duration=6", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(decodeEnvelope(t, rec).Data))

	rec = f.do(http.MethodGet, "/api/plans/latest?duration=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNuts(t *testing.T) {
	f := newServerFixture(t)

	f.nutrition.EXPECT().ListNuts(entity.LanguageEN).Return(catalog.Nuts(entity.LanguageEN)).Once()
	rec := f.do(http.MethodGet, "/api/nuts?lang=en", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Brazil Nuts")

	f.nutrition.EXPECT().GetNut("acorn", entity.LanguageDE, float64(0)).
		Return(nil, domainerrors.ErrNutNotFound.WithDetails("unknown nut: acorn")).Once()
	rec = f.do(http.MethodGet, "/api/nuts/acorn", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NUT_NOT_FOUND", env.Error.Code)
	assert.JSONEq(t, `"unknown nut: acorn"`, string(env.Error.Details))

	rec = f.do(http.MethodGet, "/api/nuts/almond?grams=-2", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.nutrition.EXPECT().NutQRCode("almond", entity.LanguageDE).Return([]byte("png"), nil).Once()
	rec = f.do(http.MethodGet, "/api/nuts/almond/qrcode", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png", rec.Body.String())
}

func TestCalculateMix(t *testing.T) {
	f := newServerFixture(t)

	f.nutrition.EXPECT().
		CalculateMix(usecase.MixInput{
			Items:    []entity.MixItem{{NutID: "almond", Grams: 30}},
			Language: entity.LanguageEN,
		}).
		Return(&usecase.MixResult{TotalGrams: 30}, nil).
		Once()

	rec := f.do(http.MethodPost, "/api/mix", `{"items":[{"nutId":"almond","grams":30}],"lang":"en"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/mix", `{"items":[{"nutId":"almond","grams":-1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "grams: gte=0")
}
