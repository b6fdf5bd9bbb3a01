// Package checkout combines the store visitors into the final price of a cart.
package checkout

import (
	"fmt"
	"strings"

	"github.com/go-leo/online-store/cart"
	"github.com/go-leo/online-store/product"
	"github.com/go-leo/online-store/visitor"
	jsoniter "github.com/json-iterator/go"
)

// Summary is the outcome of applying every store operation to a cart.
type Summary struct {
	Items    int      `json:"items"`
	Subtotal float64  `json:"subtotal"`
	Tax      float64  `json:"tax"`
	Discount float64  `json:"discount"`
	Shipping float64  `json:"shipping"`
	Total    float64  `json:"total"`
	Report   []string `json:"report"`
}

// Summarize applies fresh tax, discount, shipping and report visitors to c.
// Total is Subtotal + Tax - Discount + Shipping.
func Summarize(c *cart.Cart, opts ...Option) Summary {
	o := newOption(opts...)

	tax := visitor.NewTaxCalculator()
	discount := visitor.NewDiscountCalculator()
	shipping := visitor.NewShippingCalculator()
	report := visitor.NewReportGenerator()

	cart.ApplyVisitor(c, decorate[float64](o, "tax", tax))
	cart.ApplyVisitor(c, decorate[float64](o, "discount", discount))
	cart.ApplyVisitor(c, decorate[float64](o, "shipping", shipping))
	cart.ApplyVisitor(c, decorate[string](o, "report", report))

	s := Summary{
		Items:    c.Len(),
		Subtotal: c.TotalPrice(),
		Tax:      tax.TotalTax(),
		Discount: discount.TotalDiscount(),
		Shipping: shipping.TotalShipping(),
		Report:   report.Lines(),
	}
	if s.Report == nil {
		s.Report = []string{}
	}
	s.Total = s.Subtotal + s.Tax - s.Discount + s.Shipping
	return s
}

func decorate[R any](o *option, name string, v product.Visitor[R]) product.Visitor[R] {
	if o.Logger == nil {
		return v
	}
	return visitor.Logging[R](o.Logger, name).Decorate(v)
}

// JSON marshals the summary.
func (s Summary) JSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s)
}

// String renders the summary block with two-decimal currency amounts.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original Price:    $%.2f\n", s.Subtotal)
	fmt.Fprintf(&sb, "Tax:              +$%.2f\n", s.Tax)
	fmt.Fprintf(&sb, "Discount:         -$%.2f\n", s.Discount)
	fmt.Fprintf(&sb, "Shipping:         +$%.2f\n", s.Shipping)
	sb.WriteString(strings.Repeat("-", 40))
	fmt.Fprintf(&sb, "\nFINAL TOTAL:      $%.2f", s.Total)
	return sb.String()
}
