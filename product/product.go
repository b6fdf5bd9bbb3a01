// Package product holds the element side of the store's visitor: the three closed product
// variants and the double-dispatch entry point Accept.
package product

import (
	"fmt"
	"strconv"
)

// Product is a cart item. The set of implementations is closed to Electronics, Food and Clothing.
type Product interface {
	Name() string
	Price() float64
	Weight() float64
	Kind() Kind
	String() string

	product()
}

// base carries the attributes common to every variant. It is never mutated after construction.
type base struct {
	name   string
	price  float64
	weight float64
}

func (b base) Name() string {
	return b.name
}

func (b base) Price() float64 {
	return b.price
}

func (b base) Weight() float64 {
	return b.weight
}

func (b base) String() string {
	return fmt.Sprintf("%s ($%.2f, %skg)", b.name, b.price, strconv.FormatFloat(b.weight, 'f', -1, 64))
}

func (base) product() {}

// Electronics is a product with a warranty period.
type Electronics struct {
	base
	warrantyMonths int
}

func NewElectronics(name string, price float64, weight float64, warrantyMonths int) *Electronics {
	return &Electronics{base: base{name: name, price: price, weight: weight}, warrantyMonths: warrantyMonths}
}

func (e *Electronics) WarrantyMonths() int {
	return e.warrantyMonths
}

func (*Electronics) Kind() Kind {
	return KindElectronics
}

// Food is a product that expires.
type Food struct {
	base
	expirationDays int
}

func NewFood(name string, price float64, weight float64, expirationDays int) *Food {
	return &Food{base: base{name: name, price: price, weight: weight}, expirationDays: expirationDays}
}

func (f *Food) ExpirationDays() int {
	return f.expirationDays
}

func (*Food) Kind() Kind {
	return KindFood
}

// Clothing is a product with a size token, such as "L" or "32".
type Clothing struct {
	base
	size string
}

func NewClothing(name string, price float64, weight float64, size string) *Clothing {
	return &Clothing{base: base{name: name, price: price, weight: weight}, size: size}
}

func (c *Clothing) Size() string {
	return c.size
}

func (*Clothing) Kind() Kind {
	return KindClothing
}
