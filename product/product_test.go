package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributes(t *testing.T) {
	laptop := NewElectronics("Gaming Laptop", 1200.0, 2.5, 24)
	assert.Equal(t, "Gaming Laptop", laptop.Name())
	assert.Equal(t, 1200.0, laptop.Price())
	assert.Equal(t, 2.5, laptop.Weight())
	assert.Equal(t, 24, laptop.WarrantyMonths())
	assert.Equal(t, KindElectronics, laptop.Kind())

	milk := NewFood("Organic Milk", 3.5, 1.0, 7)
	assert.Equal(t, 7, milk.ExpirationDays())
	assert.Equal(t, KindFood, milk.Kind())

	jeans := NewClothing("Blue Jeans", 60.0, 0.5, "32")
	assert.Equal(t, "32", jeans.Size())
	assert.Equal(t, KindClothing, jeans.Kind())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Gaming Laptop ($1200.00, 2.5kg)", NewElectronics("Gaming Laptop", 1200.0, 2.5, 24).String())
	assert.Equal(t, "Organic Milk ($3.50, 1kg)", NewFood("Organic Milk", 3.5, 1.0, 7).String())
	assert.Equal(t, "Cotton T-Shirt ($25.00, 0.2kg)", NewClothing("Cotton T-Shirt", 25.0, 0.2, "L").String())
}

func TestNegativeValuesAccepted(t *testing.T) {
	p := NewFood("Refund", -4.0, -1.0, 0)
	assert.Equal(t, -4.0, p.Price())
	assert.Equal(t, -1.0, p.Weight())
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindElectronics, KindFood, KindClothing} {
		parsed, err := ParseKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	parsed, err := ParseKind(" Clothing ")
	assert.NoError(t, err)
	assert.Equal(t, KindClothing, parsed)

	_, err = ParseKind("furniture")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "unknown", Kind(0).String())
}
