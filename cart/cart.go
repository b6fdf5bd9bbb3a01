// Package cart holds the shopping cart, the object structure the store's visitors traverse.
package cart

import (
	"fmt"
	"strings"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/online-store/product"
	"github.com/go-leo/online-store/specification"
	"golang.org/x/exp/slices"
)

// Cart is an ordered collection of products. Insertion order is kept and duplicates are allowed.
// Products are shared references, the cart never mutates them.
type Cart struct {
	products []product.Product
}

func New(products ...product.Product) *Cart {
	c := &Cart{}
	for _, p := range products {
		c.Add(p)
	}
	return c
}

// Add appends p to the cart.
func (c *Cart) Add(p product.Product) {
	c.products = append(c.products, p)
}

// Remove removes the first occurrence of p. Removing a product not in the cart is a no-op.
func (c *Cart) Remove(p product.Product) {
	indexes := slicex.Indexes(c.products, p)
	if len(indexes) <= 0 {
		return
	}
	c.products = slicex.DeleteAll(c.products, indexes[0])
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.products = nil
}

// Products returns a copy of the products, in insertion order.
func (c *Cart) Products() []product.Product {
	return slices.Clone(c.products)
}

func (c *Cart) Len() int {
	return len(c.products)
}

// TotalPrice returns the sum of the product prices.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, p := range c.products {
		total += p.Price()
	}
	return total
}

// Select returns a new cart holding the products that satisfy spec, in order.
func (c *Cart) Select(spec specification.Specification[product.Product]) *Cart {
	selected := &Cart{}
	for _, p := range c.products {
		if spec.IsSatisfiedBy(p) {
			selected.Add(p)
		}
	}
	return selected
}

func (c *Cart) String() string {
	if len(c.products) == 0 {
		return "Shopping cart is empty"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shopping Cart (%d items):", len(c.products))
	for _, p := range c.products {
		sb.WriteString("\n  - ")
		sb.WriteString(p.String())
	}
	return sb.String()
}

// ApplyVisitor dispatches every product, in insertion order, to v and returns the per-item results
// in the same order. The accumulators of v are updated as a side effect.
func ApplyVisitor[R any](c *Cart, v product.Visitor[R]) []R {
	results := make([]R, 0, len(c.products))
	for _, p := range c.products {
		results = append(results, product.Accept(p, v))
	}
	return results
}
