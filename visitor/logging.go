package visitor

import (
	"github.com/go-leo/online-store/product"
	"go.uber.org/zap"
)

// Logging returns a Middleware that logs every dispatch of the named visitor at debug level.
func Logging[R any](logger *zap.Logger, name string) Middleware[R] {
	return MiddlewareFunc[R](func(visitor product.Visitor[R]) product.Visitor[R] {
		return Around(visitor, func(p product.Product, visit func() R) R {
			result := visit()
			logger.Debug("product visited",
				zap.String("visitor", name),
				zap.Stringer("kind", p.Kind()),
				zap.String("product", p.Name()),
				zap.Any("result", result),
			)
			return result
		})
	})
}
