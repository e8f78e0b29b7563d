package car

import (
	"errors"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown car category")

// Category is a class of fungible rental cars.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySedan
	CategorySUV
	CategoryVan
)

var categoryLabels = map[Category]string{
	CategorySedan: "Sedan",
	CategorySUV:   "SUV",
	CategoryVan:   "Van",
}

var categoryCodes = map[Category]string{
	CategorySedan: "SEDAN",
	CategorySUV:   "SUV",
	CategoryVan:   "VAN",
}

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{CategorySedan, CategorySUV, CategoryVan}
}

func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, categoryCodes[c]) || strings.EqualFold(s, categoryLabels[c]) {
			return c, nil
		}
	}
	return CategoryUnknown, ErrUnknownCategory
}

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// String returns the display label.
func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

func (c Category) Code() string {
	if code, ok := categoryCodes[c]; ok {
		return code
	}
	return "UNKNOWN"
}
