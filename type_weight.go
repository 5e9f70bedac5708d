package millbook

import "github.com/shopspring/decimal"

// Weight represents a mass in kilograms.
type Weight struct {
	value decimal.Decimal
}

// W creates a Weight in kilograms from any numeric value.
func W[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

// ParseWeight parses a decimal kilogram string like "14.500" into a Weight.
func ParseWeight(s string) (Weight, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: d}, nil
}

// Grams creates a Weight from an integer number of grams.
func Grams(g int) Weight {
	return Weight{value: decimal.NewFromInt(int64(g)).Div(gramsPerKg)}
}

func (w Weight) Equal(v Weight) bool      { return w.value.Equal(v.value) }
func (w Weight) IsZero() bool             { return w.value.IsZero() }
func (w Weight) IsNegative() bool         { return w.value.IsNegative() }
func (w Weight) Add(v Weight) Weight      { return Weight{value: w.value.Add(v.value)} }
func (w Weight) Sub(v Weight) Weight      { return Weight{value: w.value.Sub(v.value)} }
func (w Weight) Decimal() decimal.Decimal { return w.value }

// Mul returns the monetary value of the weight at a per-kilogram rate.
func (w Weight) Mul(rate Money) Money { return Money{value: w.value.Mul(rate.value)} }

// Round returns the weight rounded half away from zero to the given decimal places.
func (w Weight) Round(places int32) Weight { return Weight{value: w.value.Round(places)} }

// String returns the weight in kilograms, e.g. "14.5 kg".
func (w Weight) String() string { return w.value.String() + " kg" }

// Text returns the bare decimal kilogram value with three fraction digits,
// e.g. "14.500". Used for tabular export.
func (w Weight) Text() string { return w.value.StringFixed(3) }

func (w Weight) MarshalJSON() ([]byte, error) {
	return w.value.MarshalJSON()
}

func (w *Weight) UnmarshalJSON(b []byte) error {
	return w.value.UnmarshalJSON(b)
}
