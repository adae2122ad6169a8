package impl

import (
	"testing"

	"nutriplan/internal/domain/catalog"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/nutrition"
	"nutriplan/internal/usecase"
	mockSvc "nutriplan/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNutrition_GetNut(t *testing.T) {
	srv := NewNutritionService(mockSvc.NewMockQRCodeService(t))

	detail, err := srv.GetNut("brazil", entity.LanguageDE, 0)
	require.NoError(t, err)
	assert.Equal(t, "Paranüsse", detail.Nut.Name)
	assert.InDelta(t, 100, detail.Grams, 0)
	assert.InDelta(t, 1917, detail.Nutrients.Selenium, 1e-9)
	assert.Equal(t, nutrition.GutHealthStandard, detail.GutHealth)
	require.NotEmpty(t, detail.TopMicronutrients)
	assert.Equal(t, entity.NutrientSelenium, detail.TopMicronutrients[0].Nutrient)

	require.Len(t, detail.Percentages, len(entity.AllNutrients()))
	for i, n := range entity.AllNutrients() {
		assert.Equal(t, n, detail.Percentages[i].Nutrient)
	}
	assert.InDelta(t, nutrition.Percent(1917, catalog.RDA().Selenium), detail.Percentages[len(entity.AllNutrients())-2].Percent, 1e-9)

	half, err := srv.GetNut("brazil", entity.LanguageEN, 5)
	require.NoError(t, err)
	assert.Equal(t, "Brazil Nuts", half.Nut.Name)
	assert.InDelta(t, 95.85, half.Nutrients.Selenium, 1e-9)
}

func TestNutrition_GetNut_Unknown(t *testing.T) {
	srv := NewNutritionService(mockSvc.NewMockQRCodeService(t))

	_, err := srv.GetNut("peanut", entity.LanguageDE, 30)
	require.ErrorIs(t, err, domainerrors.ErrNutNotFound)
}

func TestNutrition_CalculateMix(t *testing.T) {
	srv := NewNutritionService(mockSvc.NewMockQRCodeService(t))

	result, err := srv.CalculateMix(usecase.MixInput{
		Items:    []entity.MixItem{{NutID: "almond", Grams: 50}, {NutID: "pumpkin", Grams: 50}},
		Language: entity.LanguageDE,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, result.TotalGrams, 0)
	assert.InDelta(t, 0.5*598+0.5*562, result.Totals.Energy, 1e-9)
	assert.InDelta(t, 9.65, result.GutScore, 1e-9)
	assert.Equal(t, nutrition.GutHealthExcellent, result.GutHealth)
	assert.Len(t, result.TopMicronutrients, 3)
}

func TestNutrition_CalculateMix_Preset(t *testing.T) {
	srv := NewNutritionService(mockSvc.NewMockQRCodeService(t))

	result, err := srv.CalculateMix(usecase.MixInput{
		PresetID: "power100",
		Items:    []entity.MixItem{{NutID: "cashew", Grams: 999}},
		Language: entity.LanguageEN,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, result.TotalGrams, 0)
	assert.Len(t, result.Items, 4)

	_, err = srv.CalculateMix(usecase.MixInput{PresetID: "family999"})
	require.ErrorIs(t, err, domainerrors.ErrPresetNotFound)
}

func TestNutrition_CalculateMix_Empty(t *testing.T) {
	srv := NewNutritionService(mockSvc.NewMockQRCodeService(t))

	result, err := srv.CalculateMix(usecase.MixInput{})
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.TotalGrams)
	assert.Zero(t, result.GutScore)
}

func TestNutrition_NutQRCode(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	srv := NewNutritionService(qr)
	png := []byte{0x89, 'P', 'N', 'G'}

	qr.EXPECT().ShareURL("walnut").Return("https://nuts.example/nuts/walnut").Once()
	qr.EXPECT().GenerateShareQR("https://nuts.example/nuts/walnut").Return(png, nil).Once()

	got, err := srv.NutQRCode("walnut", entity.LanguageDE)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestNutrition_NutQRCode_FallsBackToShop(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	srv := NewNutritionService(qr)

	qr.EXPECT().ShareURL("walnut").Return("").Once()
	qr.EXPECT().GenerateShareQR("https://www.2die4livefoods.com/de-de/products/aktivierte-bio-walnusse").
		Return(nil, errors.New("too long")).Once()

	_, err := srv.NutQRCode("walnut", entity.LanguageDE)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate qr code")
}

func TestNutrition_NutQRCode_UnknownNut(t *testing.T) {
	qr := mockSvc.NewMockQRCodeService(t)
	srv := NewNutritionService(qr)

	_, err := srv.NutQRCode("acorn", entity.LanguageDE)
	require.ErrorIs(t, err, domainerrors.ErrNutNotFound)
	qr.AssertNotCalled(t, "ShareURL", mock.Anything)
	qr.AssertNotCalled(t, "GenerateShareQR", mock.Anything)
}
