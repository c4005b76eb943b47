package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormCollectsEveryError(t *testing.T) {
	rules := Rules{
		"license_plate": Plate,
		"price":         Price,
		"mileage":       Mileage,
	}

	result := ValidateForm(map[string]string{
		"license_plate": "nope",
		"price":         "50",
		"mileage":       "-3",
	}, rules)

	require.False(t, result.Valid)
	assert.Len(t, result.Errors, 3, "no short-circuiting: every failing field reported")
	assert.Equal(t, "Mileage cannot be negative", result.Errors["mileage"])
}

func TestValidateFormTreatsMissingValueAsEmpty(t *testing.T) {
	rules := Rules{
		"license_plate": Plate,
		"price":         Price,
	}

	result := ValidateForm(map[string]string{"license_plate": "BBCD12"}, rules)

	require.False(t, result.Valid)
	assert.Equal(t, "Price is required", result.Errors["price"])
	assert.NotContains(t, result.Errors, "license_plate")
}

func TestValidateFormRebuildsErrorsPerPass(t *testing.T) {
	rules := Rules{"price": Price}

	first := ValidateForm(map[string]string{"price": ""}, rules)
	require.False(t, first.Valid)

	second := ValidateForm(map[string]string{"price": "5500000"}, rules)
	assert.True(t, second.Valid)
	assert.Empty(t, second.Errors, "earlier failures must not leak into a later pass")
	assert.Len(t, first.Errors, 1, "earlier result stays untouched")
}

func TestValidateFormValidInput(t *testing.T) {
	rules := Rules{
		"license_plate": Plate,
		"price":         Price,
		"mileage":       Mileage,
		"year":          YearIn(2026),
	}

	result := ValidateForm(map[string]string{
		"license_plate": "bbcd12",
		"price":         "5500000",
		"mileage":       "80000",
		"year":          "2015",
	}, rules)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}
