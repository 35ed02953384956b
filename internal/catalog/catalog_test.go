package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/kamano/internal/catalog"
)

func TestStoreSeed(t *testing.T) {
	store := catalog.New()
	all := store.All()
	require.NotEmpty(t, all)

	t.Run("IdentifiersAreUniqueAndStable", func(t *testing.T) {
		seen := make(map[int]struct{}, len(all))
		for _, p := range all {
			_, dup := seen[p.ID]
			assert.Falsef(t, dup, "duplicate product id %d", p.ID)
			seen[p.ID] = struct{}{}
		}
	})

	t.Run("EveryProductIsComplete", func(t *testing.T) {
		for _, p := range all {
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Category)
			assert.NotEmpty(t, p.MainImage)
			assert.Greater(t, p.Price.Amount, 0.0)
			assert.Equal(t, catalog.Currency, p.Price.Currency)
			assert.GreaterOrEqual(t, p.OldPrice.Amount, p.Price.Amount)
		}
	})

	t.Run("AllReturnsACopy", func(t *testing.T) {
		first := store.All()
		first[0].Name = "mutated"
		assert.NotEqual(t, "mutated", store.All()[0].Name)
	})
}

func TestStoreByID(t *testing.T) {
	store := catalog.New()

	p, err := store.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Samsung Galaxy S24 Ultra", p.Name)

	_, err = store.ByID(999)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestStoreCategoriesAndBrands(t *testing.T) {
	store := catalog.New()

	categories := store.Categories()
	assert.Equal(t, []string{
		"هواتف ذكية",
		"أجهزة كمبيوتر محمولة",
		"سماعات",
		"تلفزيونات",
		"ساعات ذكية",
	}, categories)

	brands := store.Brands()
	assert.Equal(t, []string{"Samsung", "Apple", "Sony", "Dell", "LG"}, brands)

	assert.True(t, store.HasCategory("سماعات"))
	assert.False(t, store.HasCategory("ملابس"))
}

func TestPriceDisplay(t *testing.T) {
	p, err := catalog.New().ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "12500 درهم", p.Price.Display())
	assert.Equal(t, "15000 درهم", p.OldPrice.Display())
}
