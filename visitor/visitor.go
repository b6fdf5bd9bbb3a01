// Package visitor implements the store operations as product visitors.
//
// Each visitor keeps a running accumulator that is updated as a side effect of its handlers.
// Accumulators are cumulative across traversals, call Reset between independent carts.
package visitor

import "github.com/go-leo/online-store/product"

// Resetter returns a visitor to its initial empty state.
type Resetter interface {
	Reset()
}

// Calculator is a visitor that sums a per-item amount.
type Calculator interface {
	product.Visitor[float64]
	Resetter

	// Total returns the amount accumulated since construction or the last Reset.
	Total() float64
}

var (
	_ Calculator              = (*TaxCalculator)(nil)
	_ Calculator              = (*DiscountCalculator)(nil)
	_ Calculator              = (*ShippingCalculator)(nil)
	_ product.Visitor[string] = (*ReportGenerator)(nil)
	_ Resetter                = (*ReportGenerator)(nil)
)
