package stylist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"outfiter/models"
)

const (
	layerMissingWarning = "Temperature below 20°C, a layer is requested, but no item with Category=Layer was found in the catalog."
	shortsWarning       = "Temperature below 25°C, shorts are disabled: the short was replaced by trousers."
	shortsKeptWarning   = "Temperature below 25°C, shorts are disabled, but no trousers are available: keeping the short."
	baggyWarning        = "ERL VAMP shoes detected, a baggy bottom is required: the bottom was replaced by a baggy one."
	baggyShortsKept     = "Temperature below 25°C, shorts are disabled, but ERL VAMP shoes require a baggy bottom and no baggy trousers are available: keeping the short."
)

func anyConstraints(temperature int, mustHave ...string) models.Constraints {
	return models.NewConstraints(temperature, "any", "any", "any", mustHave)
}

func TestGenerateOutfitHotDayHasNoLayer(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		e := newTestEngine(t, sampleRows(), seed)
		result, err := e.GenerateOutfit(anyConstraints(30))
		require.NoError(t, err)
		require.Nil(t, result.Outfit.Layer)
		require.NotNil(t, result.Outfit.Top)
		require.NotNil(t, result.Outfit.Bottom)
		require.NotNil(t, result.Outfit.Shoes)
		require.Empty(t, result.Warnings)
	}
}

func TestGenerateOutfitShortsOnlyFromTwentyFive(t *testing.T) {
	rows := []models.CatalogRow{
		row("White Tee", "Top", "", "", "", "", "White"),
		row("Cargo Shorts", "Bottom", "", "", "", "", "Green"),
		row("Stan Smith", "Shoes", "", "", "", "", "White"),
	}

	e := newTestEngine(t, rows, 1)
	result, err := e.GenerateOutfit(anyConstraints(30))
	require.NoError(t, err)
	require.Equal(t, "Cargo Shorts", result.Outfit.Bottom.Name)
	require.Empty(t, result.Warnings)

	// No trousers anywhere: the short is kept as last resort
	result, err = e.GenerateOutfit(anyConstraints(10))
	require.NoError(t, err)
	require.Equal(t, "Cargo Shorts", result.Outfit.Bottom.Name)
	require.Contains(t, result.Warnings, shortsKeptWarning)
	require.Contains(t, result.Warnings, layerMissingWarning)
}

func TestGenerateOutfitShortsGate(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		e := newTestEngine(t, sampleRows(), seed)
		for _, temp := range []int{-5, 10, 24} {
			result, err := e.GenerateOutfit(anyConstraints(temp))
			require.NoError(t, err)
			require.False(t, result.Outfit.Bottom.IsShortGarment, "seed %d temp %d", seed, temp)
		}
	}
}

func TestGenerateOutfitShortsGateFallsBackToWholeCatalog(t *testing.T) {
	rows := []models.CatalogRow{
		row("White Tee", "Top", "Casual", "", "", "", "White"),
		row("Cargo Shorts", "Bottom", "Casual", "", "", "", "Green"),
		row("Slim Chinos", "Bottom", "Chic", "", "", "", "Beige"),
		row("Stan Smith", "Shoes", "Casual", "", "", "", "White"),
	}

	for seed := uint64(1); seed <= 10; seed++ {
		e := newTestEngine(t, rows, seed)
		result, err := e.GenerateOutfit(models.NewConstraints(15, "casual", "any", "any", nil))
		require.NoError(t, err)
		require.Equal(t, "Slim Chinos", result.Outfit.Bottom.Name)
	}
}

func TestGenerateOutfitForcedShortIsReplacedBelowTwentyFive(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		e := newTestEngine(t, sampleRows(), seed)
		result, err := e.GenerateOutfit(anyConstraints(10, "Cargo Shorts", "Stan Smith"))
		require.NoError(t, err)
		require.Equal(t, "Stan Smith", result.Outfit.Shoes.Name)
		require.False(t, result.Outfit.Bottom.IsShortGarment)
		require.Contains(t, result.Warnings, shortsWarning)
	}
}

func TestGenerateOutfitVampShoesRequireBaggy(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		e := newTestEngine(t, sampleRows(), seed)

		result, err := e.GenerateOutfit(anyConstraints(10, "Bape ERL Vamp"))
		require.NoError(t, err)
		require.Equal(t, "Bape ERL Vamp", result.Outfit.Shoes.Name)
		require.True(t, result.Outfit.Bottom.IsBaggyVariant)

		// Hard rules outrank forced items
		result, err = e.GenerateOutfit(anyConstraints(10, "Bape ERL Vamp", "Slim Chinos"))
		require.NoError(t, err)
		require.Equal(t, "Wide Jeans", result.Outfit.Bottom.Name)
		require.Contains(t, result.Warnings, baggyWarning)
	}
}

func TestGenerateOutfitBaggyFallsBackToWholeCatalog(t *testing.T) {
	e := newTestEngine(t, sampleRows(), 3)

	// No chic baggy bottom exists, the casual Wide Jeans is used anyway
	result, err := e.GenerateOutfit(models.NewConstraints(10, "chic", "any", "any", []string{"Bape ERL Vamp"}))
	require.NoError(t, err)
	require.Equal(t, "Wide Jeans", result.Outfit.Bottom.Name)
}

func TestGenerateOutfitBaggyUnavailable(t *testing.T) {
	rows := []models.CatalogRow{
		row("White Tee", "Top", "", "", "", "", "White"),
		row("Slim Chinos", "Bottom", "", "", "", "", "Beige"),
		row("Bape ERL Vamp", "Shoes", "", "", "", "", "Black"),
	}
	e := newTestEngine(t, rows, 1)

	_, err := e.GenerateOutfit(anyConstraints(10))
	var slotErr *SlotUnsatisfiableError
	require.True(t, errors.As(err, &slotErr))
	require.Equal(t, models.SlotBottom, slotErr.Slot)

	_, err = e.GenerateOutfit(anyConstraints(10, "Slim Chinos"))
	require.True(t, errors.As(err, &slotErr))
	require.Equal(t, models.SlotBottom, slotErr.Slot)
	require.Contains(t, err.Error(), "baggy")
}

func TestGenerateOutfitVampKeepsBaggyShortOverPlainTrousers(t *testing.T) {
	rows := []models.CatalogRow{
		row("White Tee", "Top", "", "", "", "", "White"),
		row("Baggy Shorts", "Bottom", "", "Baggy", "", "", "Blue"),
		row("Slim Chinos", "Bottom", "", "", "", "", "Beige"),
		row("Bape ERL Vamp", "Shoes", "", "", "", "", "Black"),
	}

	for seed := uint64(1); seed <= 10; seed++ {
		e := newTestEngine(t, rows, seed)
		result, err := e.GenerateOutfit(anyConstraints(10))
		require.NoError(t, err)
		require.Equal(t, "Baggy Shorts", result.Outfit.Bottom.Name)
		require.Contains(t, result.Warnings, baggyShortsKept)
		require.NotContains(t, result.Warnings, shortsKeptWarning)
	}
}

func TestGenerateOutfitForcedLayerIsKept(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		e := newTestEngine(t, sampleRows(), seed)
		result, err := e.GenerateOutfit(anyConstraints(10, "RedJacket"))
		require.NoError(t, err)
		require.Equal(t, "RedJacket", result.Outfit.Layer.Name)
		require.Empty(t, result.Extras)
	}
}

func TestGenerateOutfitUnknownForcedNameIsIgnored(t *testing.T) {
	e := newTestEngine(t, sampleRows(), 1)
	result, err := e.GenerateOutfit(anyConstraints(10, "Ghost Hoodie"))
	require.NoError(t, err)
	require.NotContains(t, result.Outfit.Names(), "Ghost Hoodie")
	require.Empty(t, result.Extras)
}

func TestGenerateOutfitWithoutShoes(t *testing.T) {
	rows := []models.CatalogRow{
		row("White Tee", "Top", "", "", "", "", "White"),
		row("Slim Chinos", "Bottom", "", "", "", "", "Beige"),
	}
	e := newTestEngine(t, rows, 1)

	result, err := e.GenerateOutfit(anyConstraints(10))
	require.Nil(t, result)
	var slotErr *SlotUnsatisfiableError
	require.True(t, errors.As(err, &slotErr))
	require.Equal(t, models.SlotShoes, slotErr.Slot)
}

func TestGenerateOutfitWithoutTop(t *testing.T) {
	rows := []models.CatalogRow{
		row("Slim Chinos", "Bottom", "", "", "", "", "Beige"),
		row("Stan Smith", "Shoes", "", "", "", "", "White"),
	}
	e := newTestEngine(t, rows, 1)

	_, err := e.GenerateOutfit(anyConstraints(10))
	var slotErr *SlotUnsatisfiableError
	require.True(t, errors.As(err, &slotErr))
	require.Equal(t, models.SlotTop, slotErr.Slot)
}

func TestGenerateOutfitForcedPlacementPriority(t *testing.T) {
	e := newTestEngine(t, sampleRows(), 1)

	// "Layer, Top" goes to the layer slot
	result, err := e.GenerateOutfit(anyConstraints(30, "Wool Sweater"))
	require.NoError(t, err)
	require.Equal(t, "Wool Sweater", result.Outfit.Layer.Name)

	// First matching item in catalog order takes the slot, the rest are extras
	result, err = e.GenerateOutfit(anyConstraints(30, "Red Polo", "White Tee", "Bape ERL Vamp", "Stan Smith"))
	require.NoError(t, err)
	require.Equal(t, "White Tee", result.Outfit.Top.Name)
	require.Equal(t, "Stan Smith", result.Outfit.Shoes.Name)
	require.Equal(t, []string{"Red Polo", "Bape ERL Vamp"}, names(result.Extras))
}

func TestGenerateOutfitExtraTopRescuedAsLayer(t *testing.T) {
	rows := []models.CatalogRow{
		row("White Tee", "Top", "", "", "", "", "White"),
		row("Red Polo", "Top", "", "", "", "", "Red"),
		row("Slim Chinos", "Bottom", "", "", "", "", "Beige"),
		row("Stan Smith", "Shoes", "", "", "", "", "White"),
	}
	e := newTestEngine(t, rows, 1)

	result, err := e.GenerateOutfit(anyConstraints(10, "White Tee", "Red Polo"))
	require.NoError(t, err)
	require.Equal(t, "White Tee", result.Outfit.Top.Name)
	require.Equal(t, "Red Polo", result.Outfit.Layer.Name)
	require.Empty(t, result.Extras)
	require.Contains(t, result.Warnings, layerMissingWarning)

	// Not needed from 20°C
	result, err = e.GenerateOutfit(anyConstraints(20, "White Tee", "Red Polo"))
	require.NoError(t, err)
	require.Nil(t, result.Outfit.Layer)
	require.Equal(t, []string{"Red Polo"}, names(result.Extras))
}

func TestGenerateOutfitColorPreferenceIsSoft(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		e := newTestEngine(t, sampleRows(), seed)
		result, err := e.GenerateOutfit(models.NewConstraints(10, "any", "any", "Red", nil))
		require.NoError(t, err)
		require.Equal(t, "Red Polo", result.Outfit.Top.Name)
		require.Equal(t, "RedJacket", result.Outfit.Layer.Name)
		require.Contains(t, result.Warnings, `No bottom in color "red": color preference ignored for this slot.`)
		require.Contains(t, result.Warnings, `No shoes in color "red": color preference ignored for this slot.`)
	}
}

func TestGenerateOutfitForcedSlotGetsNoColorWarning(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		e := newTestEngine(t, sampleRows(), seed)
		result, err := e.GenerateOutfit(models.NewConstraints(10, "any", "any", "Red", []string{"Stan Smith"}))
		require.NoError(t, err)
		require.Equal(t, "Stan Smith", result.Outfit.Shoes.Name)
		require.NotContains(t, result.Warnings, `No shoes in color "red": color preference ignored for this slot.`)
		require.Contains(t, result.Warnings, `No bottom in color "red": color preference ignored for this slot.`)
	}
}

func TestGenerateOutfitDoesNotMutateCatalog(t *testing.T) {
	e := newTestEngine(t, sampleRows(), 7)
	before := make([]models.Item, len(e.Items()))
	copy(before, e.Items())

	for i := 0; i < 20; i++ {
		_, _ = e.GenerateOutfit(anyConstraints(10, "White Tee", "Red Polo", "Cargo Shorts"))
	}
	require.Equal(t, before, e.Items())
}
