//go:build unit

package car_test

import (
	"testing"

	"car-rental/internal/domain/car"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  car.Category
		errIs error
	}{
		{name: "code OK", in: "SEDAN", want: car.CategorySedan},
		{name: "label OK", in: "Van", want: car.CategoryVan},
		{name: "lower case OK", in: "suv", want: car.CategorySUV},
		{name: "surrounding spaces OK", in: "  sedan ", want: car.CategorySedan},
		{name: "empty NG", in: "", errIs: car.ErrUnknownCategory},
		{name: "unknown NG", in: "truck", errIs: car.ErrUnknownCategory},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := car.ParseCategory(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, car.CategoryUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, []car.Category{car.CategorySedan, car.CategorySUV, car.CategoryVan}, car.Categories())

	assert.Equal(t, "Sedan", car.CategorySedan.String())
	assert.Equal(t, "SUV", car.CategorySUV.String())
	assert.Equal(t, "VAN", car.CategoryVan.Code())

	assert.False(t, car.CategoryUnknown.IsValid())
	assert.False(t, car.Category(42).IsValid())
	assert.Equal(t, "Unknown", car.Category(42).String())
}
