package pricing

import (
	"testing"

	"pizzaria-be/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_Pizza(t *testing.T) {
	bases := []float64{35, 40, 42.5, 55}

	for _, p := range bases {
		for q := 1; q <= 4; q++ {
			assert.InDelta(t, p*0.8*float64(q),
				Estimate(p, q, catalog.CategoryPizza, catalog.SizeSmall, catalog.CrustTraditional), 0.005)
			assert.InDelta(t, (p*1.4+5)*float64(q),
				Estimate(p, q, catalog.CategoryPizza, catalog.SizeFamily, catalog.CrustFilled), 0.005)
		}
	}

	t.Run("UnknownSizeIsMedium", func(t *testing.T) {
		assert.Equal(t,
			Estimate(40, 2, catalog.CategoryPizza, catalog.SizeMedium, catalog.CrustThin),
			Estimate(40, 2, catalog.CategoryPizza, "Gigante", catalog.CrustThin))
		assert.Equal(t, 80.0, Estimate(40, 2, catalog.CategoryPizza, "", ""))
	})

	t.Run("CrustSurchargeScalesWithQuantity", func(t *testing.T) {
		assert.Equal(t, 106.0, Estimate(40, 2, catalog.CategoryPizza, catalog.SizeLarge, catalog.CrustFilled))
	})
}

func TestEstimate_FractionalBasesAreNotRounded(t *testing.T) {
	for _, p := range []float64{33.33, 10.005, 19.99} {
		for q := 1; q <= 4; q++ {
			qf := float64(q)
			assert.Equal(t, p*0.8*qf,
				Estimate(p, q, catalog.CategoryPizza, catalog.SizeSmall, catalog.CrustTraditional))
			assert.Equal(t, (p*1.4+5)*qf,
				Estimate(p, q, catalog.CategoryPizza, catalog.SizeFamily, catalog.CrustFilled))
			assert.Equal(t, p*1.5*qf,
				Estimate(p, q, catalog.CategoryBeverage, catalog.SizeLarge, ""))
			assert.Equal(t, p*qf,
				Estimate(p, q, catalog.CategoryDessert, catalog.SizeStandard, ""))
		}
	}

	assert.InDelta(t, 79.992, Estimate(33.33, 3, catalog.CategoryPizza, catalog.SizeSmall, catalog.CrustTraditional), 1e-9)
	assert.InDelta(t, 19.007, Estimate(10.005, 1, catalog.CategoryPizza, catalog.SizeFamily, catalog.CrustFilled), 1e-9)
}

func TestEstimate_BeverageAndDessert(t *testing.T) {
	assert.Equal(t, 27.0, Estimate(6, 3, catalog.CategoryBeverage, catalog.SizeLarge, ""))
	assert.Equal(t, 18.0, Estimate(6, 3, catalog.CategoryBeverage, catalog.SizeStandard, ""))
	// crust means nothing outside pizzas
	assert.Equal(t, 18.0, Estimate(6, 3, catalog.CategoryBeverage, catalog.SizeStandard, catalog.CrustFilled))

	assert.Equal(t, 24.0, Estimate(12, 2, catalog.CategoryDessert, catalog.SizeLarge, catalog.CrustFilled))
}

func TestEstimate_UnknownCategory(t *testing.T) {
	assert.Equal(t, 30.0, Estimate(10, 3, catalog.Category("combo"), catalog.SizeFamily, catalog.CrustFilled))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 10.33, Round(10.333333))
	assert.Equal(t, 10.34, Round(10.335001))
	assert.Equal(t, 0.0, Round(0))
}
