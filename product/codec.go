package product

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// record is the flat wire shape of a product. Only the attribute of its own kind is set.
type record struct {
	Kind           string  `json:"kind"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Weight         float64 `json:"weight"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
	ExpirationDays int     `json:"expiration_days,omitempty"`
	Size           string  `json:"size,omitempty"`
}

func toRecord(p Product) record {
	r := record{Kind: p.Kind().String(), Name: p.Name(), Price: p.Price(), Weight: p.Weight()}
	switch p := p.(type) {
	case *Electronics:
		r.WarrantyMonths = p.WarrantyMonths()
	case *Food:
		r.ExpirationDays = p.ExpirationDays()
	case *Clothing:
		r.Size = p.Size()
	}
	return r
}

func (r record) decode() (Product, error) {
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindElectronics:
		return NewElectronics(r.Name, r.Price, r.Weight, r.WarrantyMonths), nil
	case KindFood:
		return NewFood(r.Name, r.Price, r.Weight, r.ExpirationDays), nil
	default:
		return NewClothing(r.Name, r.Price, r.Weight, r.Size), nil
	}
}

// Encode marshals products to a JSON array, in order.
func Encode(products []Product) ([]byte, error) {
	records := make([]record, 0, len(products))
	for _, p := range products {
		records = append(records, toRecord(p))
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "product: encode")
	}
	return data, nil
}

// Decode unmarshals a JSON array of products. Prices and weights are taken as given.
func Decode(data []byte) ([]Product, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "product: decode")
	}
	products := make([]Product, 0, len(records))
	for i, r := range records {
		p, err := r.decode()
		if err != nil {
			return nil, errors.Wrapf(err, "product: decode record %d", i)
		}
		products = append(products, p)
	}
	return products, nil
}

// Load reads and decodes the products stored in the JSON file at path.
func Load(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "product: read %s", path)
	}
	return Decode(data)
}
