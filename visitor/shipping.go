package visitor

import "github.com/go-leo/online-store/product"

// Shipping rates in dollars per kilogram. Electronics ship as fragile.
const (
	ShippingRateElectronics = 5.0
	ShippingRateFood        = 2.0
	ShippingRateClothing    = 3.0
)

// ShippingCalculator calculates the shipping cost of each product from its weight.
type ShippingCalculator struct {
	totalShipping float64
}

func NewShippingCalculator() *ShippingCalculator {
	return &ShippingCalculator{}
}

func (c *ShippingCalculator) VisitElectronics(electronics *product.Electronics) float64 {
	shipping := electronics.Weight() * ShippingRateElectronics
	c.totalShipping += shipping
	return shipping
}

func (c *ShippingCalculator) VisitFood(food *product.Food) float64 {
	shipping := food.Weight() * ShippingRateFood
	c.totalShipping += shipping
	return shipping
}

func (c *ShippingCalculator) VisitClothing(clothing *product.Clothing) float64 {
	shipping := clothing.Weight() * ShippingRateClothing
	c.totalShipping += shipping
	return shipping
}

func (c *ShippingCalculator) TotalShipping() float64 {
	return c.totalShipping
}

func (c *ShippingCalculator) Total() float64 {
	return c.totalShipping
}

func (c *ShippingCalculator) Reset() {
	c.totalShipping = 0
}
