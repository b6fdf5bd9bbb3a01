package visitor

import "github.com/go-leo/online-store/product"

// Middleware allows us to write something like decorators to a product visitor.
// It can execute something before a handler or after.
type Middleware[R any] interface {
	// Decorate wraps the underlying visitor, adding some functionality.
	Decorate(visitor product.Visitor[R]) product.Visitor[R]
}

// The MiddlewareFunc type is an adapter to allow the use of ordinary functions as Middleware.
// If f is a function with the appropriate signature, MiddlewareFunc(f) is a Middleware that calls f.
type MiddlewareFunc[R any] func(visitor product.Visitor[R]) product.Visitor[R]

// Decorate call f(visitor).
func (f MiddlewareFunc[R]) Decorate(visitor product.Visitor[R]) product.Visitor[R] {
	return f(visitor)
}

// Chain decorates the given visitor with all middlewares. The first middleware is the outermost.
func Chain[R any](visitor product.Visitor[R], middlewares ...Middleware[R]) product.Visitor[R] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		visitor = middlewares[i].Decorate(visitor)
	}
	return visitor
}

// Around wraps every handler of visitor. around receives the visited product and a func that
// runs the wrapped handler.
func Around[R any](visitor product.Visitor[R], around func(p product.Product, visit func() R) R) product.Visitor[R] {
	return Funcs[R]{
		Electronics: func(electronics *product.Electronics) R {
			return around(electronics, func() R { return visitor.VisitElectronics(electronics) })
		},
		Food: func(food *product.Food) R {
			return around(food, func() R { return visitor.VisitFood(food) })
		},
		Clothing: func(clothing *product.Clothing) R {
			return around(clothing, func() R { return visitor.VisitClothing(clothing) })
		},
	}
}

// Counts records how many times each variant handler ran.
type Counts struct {
	counts map[product.Kind]int
}

// Of returns the number of visits of products of kind k.
func (c *Counts) Of(k product.Kind) int {
	return c.counts[k]
}

// Total returns the number of visits across all kinds.
func (c *Counts) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Counting returns a Middleware that counts handler invocations, and the counts it fills.
func Counting[R any]() (Middleware[R], *Counts) {
	counts := &Counts{counts: make(map[product.Kind]int)}
	mdw := MiddlewareFunc[R](func(visitor product.Visitor[R]) product.Visitor[R] {
		return Around(visitor, func(p product.Product, visit func() R) R {
			counts.counts[p.Kind()]++
			return visit()
		})
	})
	return mdw, counts
}
