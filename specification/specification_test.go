package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Item struct {
	Category string
	Price    float64
}

const (
	Electronics = "electronics"
	Food        = "food"
	Clothing    = "clothing"
)

func TestSpecification(t *testing.T) {
	isElectronics := New[Item](func(t Item) bool {
		return t.Category == Electronics
	})
	isFood := New[Item](func(t Item) bool {
		return t.Category == Food
	})
	isClothing := New[Item](func(t Item) bool {
		return t.Category == Clothing
	})
	isExpensive := New[Item](func(t Item) bool {
		return t.Price >= 100
	})

	a := Item{Category: Electronics, Price: 1200}
	assert.True(t, isElectronics.IsSatisfiedBy(a))
	assert.False(t, isFood.IsSatisfiedBy(a))
	assert.False(t, isClothing.IsSatisfiedBy(a))

	assert.True(t, And(isElectronics, isExpensive).IsSatisfiedBy(a))
	assert.False(t, And(isFood, isExpensive).IsSatisfiedBy(a))

	assert.True(t, Or(isElectronics, isFood).IsSatisfiedBy(a))
	assert.False(t, Or(isFood, isClothing).IsSatisfiedBy(a))

	assert.False(t, Not(isElectronics).IsSatisfiedBy(a))
	assert.True(t, Not(isFood).IsSatisfiedBy(a))
	assert.True(t, Not(isClothing).IsSatisfiedBy(a))
}

func TestSpecificationChaining(t *testing.T) {
	isFood := New[Item](func(t Item) bool {
		return t.Category == Food
	})
	isExpensive := New[Item](func(t Item) bool {
		return t.Price >= 100
	})

	cheapFood := isFood.And(isExpensive.Not())
	assert.True(t, cheapFood.IsSatisfiedBy(Item{Category: Food, Price: 3.5}))
	assert.False(t, cheapFood.IsSatisfiedBy(Item{Category: Food, Price: 150}))
	assert.False(t, cheapFood.IsSatisfiedBy(Item{Category: Clothing, Price: 25}))

	foodOrExpensive := isFood.Or(isExpensive)
	assert.True(t, foodOrExpensive.IsSatisfiedBy(Item{Category: Clothing, Price: 120}))
	assert.True(t, foodOrExpensive.Not().Not().IsSatisfiedBy(Item{Category: Food, Price: 1}))
	assert.False(t, foodOrExpensive.IsSatisfiedBy(Item{Category: Clothing, Price: 60}))
}

func TestJunction(t *testing.T) {
	isFood := New[Item](func(t Item) bool {
		return t.Category == Food
	})
	isCheap := New[Item](func(t Item) bool {
		return t.Price < 10
	})
	milk := Item{Category: Food, Price: 3.5}
	jeans := Item{Category: Clothing, Price: 60}

	assert.True(t, Conjunction(isFood, isCheap).IsSatisfiedBy(milk))
	assert.False(t, Conjunction(isFood, isCheap).IsSatisfiedBy(jeans))
	assert.True(t, Conjunction[Item]().IsSatisfiedBy(jeans))

	assert.True(t, Disjunction(isFood, isCheap).IsSatisfiedBy(milk))
	assert.False(t, Disjunction(isFood, isCheap).IsSatisfiedBy(jeans))
	assert.False(t, Disjunction[Item]().IsSatisfiedBy(milk))

	assert.True(t, Conjunction(isFood, isCheap).Not().IsSatisfiedBy(jeans))
	assert.True(t, Disjunction(isFood).Or(isCheap).IsSatisfiedBy(milk))
	assert.False(t, Disjunction(isFood).And(isCheap).IsSatisfiedBy(jeans))
}
