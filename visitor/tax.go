package visitor

import "github.com/go-leo/online-store/product"

// Tax rates, applied to price.
const (
	TaxRateElectronics = 0.20
	TaxRateFood        = 0.05
	TaxRateClothing    = 0.10
)

// TaxCalculator calculates the tax owed on each product.
type TaxCalculator struct {
	totalTax float64
}

func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{}
}

func (c *TaxCalculator) VisitElectronics(electronics *product.Electronics) float64 {
	tax := electronics.Price() * TaxRateElectronics
	c.totalTax += tax
	return tax
}

func (c *TaxCalculator) VisitFood(food *product.Food) float64 {
	tax := food.Price() * TaxRateFood
	c.totalTax += tax
	return tax
}

func (c *TaxCalculator) VisitClothing(clothing *product.Clothing) float64 {
	tax := clothing.Price() * TaxRateClothing
	c.totalTax += tax
	return tax
}

func (c *TaxCalculator) TotalTax() float64 {
	return c.totalTax
}

func (c *TaxCalculator) Total() float64 {
	return c.totalTax
}

func (c *TaxCalculator) Reset() {
	c.totalTax = 0
}
