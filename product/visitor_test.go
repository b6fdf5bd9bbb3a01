package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingVisitor returns the name of the handler it ran and counts invocations.
type recordingVisitor struct {
	calls map[string]int
}

func newRecordingVisitor() *recordingVisitor {
	return &recordingVisitor{calls: map[string]int{}}
}

func (v *recordingVisitor) VisitElectronics(*Electronics) string {
	v.calls["electronics"]++
	return "electronics"
}

func (v *recordingVisitor) VisitFood(*Food) string {
	v.calls["food"]++
	return "food"
}

func (v *recordingVisitor) VisitClothing(*Clothing) string {
	v.calls["clothing"]++
	return "clothing"
}

func TestAcceptSelectsVariantHandler(t *testing.T) {
	products := []Product{
		NewElectronics("Smartphone", 800.0, 0.3, 12),
		NewFood("Whole Wheat Bread", 2.0, 0.5, 5),
		NewClothing("Cotton T-Shirt", 25.0, 0.2, "L"),
	}
	for _, p := range products {
		v := newRecordingVisitor()
		assert.Equal(t, p.Kind().String(), Accept[string](p, v))
		assert.Equal(t, map[string]int{p.Kind().String(): 1}, v.calls)
	}
}

type priceVisitor struct{}

func (priceVisitor) VisitElectronics(e *Electronics) float64 { return e.Price() }

func (priceVisitor) VisitFood(f *Food) float64 { return f.Price() }

func (priceVisitor) VisitClothing(c *Clothing) float64 { return c.Price() }

func TestAcceptPassesItself(t *testing.T) {
	assert.Equal(t, 60.0, Accept[float64](NewClothing("Blue Jeans", 60.0, 0.5, "32"), priceVisitor{}))
	assert.Equal(t, 3.5, Accept[float64](NewFood("Organic Milk", 3.5, 1.0, 7), priceVisitor{}))
}

func TestPredicates(t *testing.T) {
	laptop := NewElectronics("Gaming Laptop", 1200.0, 2.5, 24)
	milk := NewFood("Organic Milk", 3.5, 1.0, 7)

	assert.True(t, OfKind(KindElectronics).IsSatisfiedBy(laptop))
	assert.False(t, OfKind(KindElectronics).IsSatisfiedBy(milk))
	assert.True(t, PriceAtLeast(3.5).IsSatisfiedBy(milk))
	assert.False(t, PriceAtLeast(3.51).IsSatisfiedBy(milk))
	assert.True(t, WeightAtMost(1.0).IsSatisfiedBy(milk))
	assert.False(t, WeightAtMost(1.0).IsSatisfiedBy(laptop))
	assert.True(t, OfKind(KindFood).And(WeightAtMost(1.0)).IsSatisfiedBy(milk))
}
