package product

import "fmt"

// Visitor declares one handler per product variant. R is the per-item result of the operation.
// Adding a variant to the store means adding a handler here, and so to every visitor.
type Visitor[R any] interface {
	VisitElectronics(electronics *Electronics) R
	VisitFood(food *Food) R
	VisitClothing(clothing *Clothing) R
}

// Accept dispatches p to the handler of v matching p's variant and returns its result unchanged.
// The operation performed is selected by both the variant of p and the concrete v.
func Accept[R any](p Product, v Visitor[R]) R {
	switch p := p.(type) {
	case *Electronics:
		return v.VisitElectronics(p)
	case *Food:
		return v.VisitFood(p)
	case *Clothing:
		return v.VisitClothing(p)
	default:
		panic(fmt.Errorf("product: unexpected variant %T", p))
	}
}
