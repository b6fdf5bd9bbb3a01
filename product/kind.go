package product

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind tags a product variant.
type Kind int

const (
	KindElectronics Kind = iota + 1
	KindFood
	KindClothing
)

func (k Kind) String() string {
	switch k {
	case KindElectronics:
		return "electronics"
	case KindFood:
		return "food"
	case KindClothing:
		return "clothing"
	default:
		return "unknown"
	}
}

// ParseKind parses the lower-case name of a kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "electronics":
		return KindElectronics, nil
	case "food":
		return KindFood, nil
	case "clothing":
		return KindClothing, nil
	default:
		return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}
