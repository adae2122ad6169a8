package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/delivery/http/response"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/profile"
	"nutriplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlannerUC usecase.PlannerUsecase
	CacheUC   usecase.PlanCacheUsecase
	Logger    *slog.Logger
}

// PlanHandler serves plan generation and the plan store
type PlanHandler struct {
	plannerUC usecase.PlannerUsecase
	cacheUC   usecase.PlanCacheUsecase
	logger    *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		plannerUC: params.PlannerUC,
		cacheUC:   params.CacheUC,
		logger:    params.Logger,
	}
}

// SavePlanRequest is the body of POST /api/plans
type SavePlanRequest struct {
	Plan json.RawMessage `json:"plan"`
	Hash string          `json:"hash"`
}

// GeneratePlan validates the posted profile and returns a weekly plan
func (h *PlanHandler) GeneratePlan(c echo.Context) error {
	var in profile.Input
	if err := c.Bind(&in); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	result, err := h.plannerUC.CreatePlan(c.Request().Context(), in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// LatestPlan returns the most recent stored plan, or null
func (h *PlanHandler) LatestPlan(c echo.Context) error {
	var duration int
	if raw := c.QueryParam("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 52 {
			return response.BadRequest(c, "INVALID_DURATION", "duration must be between 1 and 52 weeks")
		}
		duration = parsed
	}

	result := h.plannerUC.LatestPlan(c.Request().Context(), entity.ParseLanguage(c.QueryParam("lang")), duration)

	return response.Success(c, http.StatusOK, result)
}

// Plans serves the plan store endpoint of existing clients. Bodies are
// written without the envelope.
func (h *PlanHandler) Plans(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
		return h.savePlan(c)
	case http.MethodGet:
		return h.getPlan(c)
	default:
		return response.Compat(c, http.StatusMethodNotAllowed, response.CompatError{Error: "Method Not Allowed"})
	}
}

func (h *PlanHandler) savePlan(c echo.Context) error {
	var req SavePlanRequest
	// an empty body counts as a request without a plan
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.Compat(c, http.StatusBadRequest, response.CompatError{Error: "Invalid JSON body"})
	}

	record, err := h.cacheUC.Save(c.Request().Context(), req.Plan, req.Hash)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPlanMissing) {
			return response.Compat(c, http.StatusBadRequest, response.CompatError{Error: "Missing plan"})
		}

		return h.storeFailure(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

func (h *PlanHandler) getPlan(c echo.Context) error {
	payload, err := h.cacheUC.Latest(c.Request().Context(), c.QueryParam("hash"))
	if err != nil {
		return h.storeFailure(c, err)
	}
	if payload == nil {
		payload = json.RawMessage("null")
	}

	return c.JSONBlob(http.StatusOK, payload)
}

func (h *PlanHandler) storeFailure(c echo.Context, err error) error {
	deliverycontext.Logger(c.Request().Context(), h.logger).Error("Plan store request failed", slog.Any("error", err))

	message := err.Error()
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message()
	}

	return response.Compat(c, http.StatusInternalServerError, response.CompatError{Error: message})
}
