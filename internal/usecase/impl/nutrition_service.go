package impl

import (
	"nutriplan/internal/domain/catalog"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/nutrition"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"
	"nutriplan/internal/usecase"
)

const (
	defaultPortionGrams = 100
	topNutrients        = 3
)

// nutritionService implements the NutritionUsecase interface.
type nutritionService struct {
	qrcode service.QRCodeService
}

// NewNutritionService is the constructor for nutritionService.
func NewNutritionService(qrcode service.QRCodeService) usecase.NutritionUsecase {
	return &nutritionService{qrcode: qrcode}
}

func (srv *nutritionService) ListNuts(lang entity.Language) []entity.NutProfile {
	return catalog.Nuts(lang)
}

// GetNut scales a nut to grams, 100g when grams is not positive.
func (srv *nutritionService) GetNut(id string, lang entity.Language, grams float64) (*usecase.NutDetail, error) {
	nut, ok := catalog.Nut(id, lang)
	if !ok {
		return nil, domainerrors.ErrNutNotFound.WithDetails("unknown nut: " + id)
	}
	if grams <= 0 {
		grams = defaultPortionGrams
	}

	rda := catalog.RDA()
	portion := nut.NutrientsPer100g.Portion(grams)

	return &usecase.NutDetail{
		Nut:               nut,
		Grams:             grams,
		Nutrients:         portion,
		Percentages:       nutrition.Percentages(portion, rda),
		Chart:             nutrition.ChartRows(portion, rda),
		TopMicronutrients: nutrition.TopMicronutrients(portion, rda, topNutrients),
		GutHealth:         nutrition.GutHealth(nut.GutHealthScore),
	}, nil
}

func (srv *nutritionService) ListPresets() []catalog.Preset {
	return catalog.Presets()
}

// CalculateMix totals a preset or an explicit list of items.
func (srv *nutritionService) CalculateMix(in usecase.MixInput) (*usecase.MixResult, error) {
	items := in.Items
	if in.PresetID != "" {
		preset, ok := catalog.FindPreset(in.PresetID)
		if !ok {
			return nil, domainerrors.ErrPresetNotFound.WithDetails("unknown preset: " + in.PresetID)
		}
		items = preset.Items
	}
	if items == nil {
		items = []entity.MixItem{}
	}

	nuts := catalog.Index(in.Language)
	rda := catalog.RDA()
	totals := nutrition.Aggregate(items, nuts)
	gutScore := nutrition.GutScore(items, nuts)

	return &usecase.MixResult{
		Items:             items,
		Totals:            totals,
		PercentOfRDA:      nutrition.PercentOfRDA(totals, rda),
		TopMicronutrients: nutrition.TopMicronutrients(totals, rda, topNutrients),
		Chart:             nutrition.ChartRows(totals, rda),
		Milestones:        nutrition.Milestones(totals, rda),
		TotalGrams:        nutrition.TotalGrams(items),
		GutScore:          gutScore,
		GutHealth:         nutrition.GutHealth(gutScore),
	}, nil
}

// NutQRCode encodes the public share link of a nut, or its shop page when
// no share base URL is configured.
func (srv *nutritionService) NutQRCode(id string, lang entity.Language) ([]byte, error) {
	nut, ok := catalog.Nut(id, lang)
	if !ok {
		return nil, domainerrors.ErrNutNotFound.WithDetails("unknown nut: " + id)
	}

	target := srv.qrcode.ShareURL(nut.ID)
	if target == "" {
		target = nut.ShopURL
	}

	png, err := srv.qrcode.GenerateShareQR(target)
	if err != nil {
		return nil, errors.Wrap(err, "generate qr code")
	}

	return png, nil
}
