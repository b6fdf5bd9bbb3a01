package product

import "github.com/go-leo/online-store/specification"

// OfKind is satisfied by products of kind k.
func OfKind(k Kind) specification.Specification[Product] {
	return specification.New(func(p Product) bool {
		return p.Kind() == k
	})
}

// PriceAtLeast is satisfied by products priced at min or more.
func PriceAtLeast(min float64) specification.Specification[Product] {
	return specification.New(func(p Product) bool {
		return p.Price() >= min
	})
}

// WeightAtMost is satisfied by products weighing max kilograms or less.
func WeightAtMost(max float64) specification.Specification[Product] {
	return specification.New(func(p Product) bool {
		return p.Weight() <= max
	})
}
