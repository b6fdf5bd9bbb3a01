package visitor

import "github.com/go-leo/online-store/product"

// Funcs is an adapter to allow the use of ordinary functions as a product visitor.
// A nil func returns the zero R.
type Funcs[R any] struct {
	Electronics func(electronics *product.Electronics) R
	Food        func(food *product.Food) R
	Clothing    func(clothing *product.Clothing) R
}

func (f Funcs[R]) VisitElectronics(electronics *product.Electronics) R {
	if f.Electronics == nil {
		var r R
		return r
	}
	return f.Electronics(electronics)
}

func (f Funcs[R]) VisitFood(food *product.Food) R {
	if f.Food == nil {
		var r R
		return r
	}
	return f.Food(food)
}

func (f Funcs[R]) VisitClothing(clothing *product.Clothing) R {
	if f.Clothing == nil {
		var r R
		return r
	}
	return f.Clothing(clothing)
}
