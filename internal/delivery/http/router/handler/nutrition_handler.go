package handler

import (
	"net/http"
	"strconv"

	"nutriplan/internal/delivery/http/response"
	"nutriplan/internal/delivery/http/validator"
	"nutriplan/internal/domain/entity"
	"nutriplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NutritionHandlerParams holds dependencies for NutritionHandler, injected by Fx.
type NutritionHandlerParams struct {
	fx.In

	NutritionUC usecase.NutritionUsecase
}

// NutritionHandler serves the nut catalog and the mix calculator
type NutritionHandler struct {
	nutritionUC usecase.NutritionUsecase
}

// NewNutritionHandler is the constructor for NutritionHandler
func NewNutritionHandler(params NutritionHandlerParams) *NutritionHandler {
	return &NutritionHandler{
		nutritionUC: params.NutritionUC,
	}
}

// MixItemRequest is one nut of a mix
type MixItemRequest struct {
	NutID string  `json:"nutId" validate:"required"`
	Grams float64 `json:"grams" validate:"gte=0,lte=1000"`
}

// CalculateMixRequest represents the request body of the mix calculator
type CalculateMixRequest struct {
	Items  []MixItemRequest `json:"items" validate:"max=20,dive"`
	Preset string           `json:"preset"`
	Lang   string           `json:"lang"`
}

// ListNuts returns the localized catalog
func (h *NutritionHandler) ListNuts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.nutritionUC.ListNuts(language(c)))
}

// GetNut returns one nut scaled to ?grams=, 100g by default
func (h *NutritionHandler) GetNut(c echo.Context) error {
	var grams float64
	if raw := c.QueryParam("grams"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_GRAMS", "grams must be a positive number")
		}
		grams = parsed
	}

	detail, err := h.nutritionUC.GetNut(c.Param("id"), language(c), grams)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// NutQRCode returns a PNG QR code linking to the nut
func (h *NutritionHandler) NutQRCode(c echo.Context) error {
	png, err := h.nutritionUC.NutQRCode(c.Param("id"), language(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListPresets returns the predefined mixes
func (h *NutritionHandler) ListPresets(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.nutritionUC.ListPresets())
}

// CalculateMix totals a preset or the posted items
func (h *NutritionHandler) CalculateMix(c echo.Context) error {
	var req CalculateMixRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mix input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid mix input", validator.Messages(err))
	}

	items := make([]entity.MixItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.MixItem{NutID: item.NutID, Grams: item.Grams})
	}

	lang := req.Lang
	if lang == "" {
		lang = c.QueryParam("lang")
	}

	result, err := h.nutritionUC.CalculateMix(usecase.MixInput{
		Items:    items,
		PresetID: req.Preset,
		Language: entity.ParseLanguage(lang),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func language(c echo.Context) entity.Language {
	return entity.ParseLanguage(c.QueryParam("lang"))
}
