package visitor

import "github.com/go-leo/online-store/product"

// Discount rates, applied to price.
const (
	DiscountRateElectronics = 0.15
	DiscountRateFood        = 0.02
	DiscountRateClothing    = 0.25
)

// DiscountCalculator calculates the discount granted on each product.
type DiscountCalculator struct {
	totalDiscount float64
}

func NewDiscountCalculator() *DiscountCalculator {
	return &DiscountCalculator{}
}

func (c *DiscountCalculator) VisitElectronics(electronics *product.Electronics) float64 {
	discount := electronics.Price() * DiscountRateElectronics
	c.totalDiscount += discount
	return discount
}

func (c *DiscountCalculator) VisitFood(food *product.Food) float64 {
	discount := food.Price() * DiscountRateFood
	c.totalDiscount += discount
	return discount
}

func (c *DiscountCalculator) VisitClothing(clothing *product.Clothing) float64 {
	discount := clothing.Price() * DiscountRateClothing
	c.totalDiscount += discount
	return discount
}

func (c *DiscountCalculator) TotalDiscount() float64 {
	return c.totalDiscount
}

func (c *DiscountCalculator) Total() float64 {
	return c.totalDiscount
}

func (c *DiscountCalculator) Reset() {
	c.totalDiscount = 0
}
