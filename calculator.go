package millbook

import "github.com/shopspring/decimal"

// The packaging model of the mill, in grams. A full spool (drum winding) weighs
// 1250g net of the open stock left on it, each cone keeps a 30g residual per
// 1000g of closing stock, and every cone beyond the running drum count carries
// a full 1250g winding. These constants encode physics, not configuration.
var (
	spoolTareGrams    = decimal.NewFromInt(1250)
	coneResidualGrams = decimal.NewFromInt(30)
	gramsPerKg        = decimal.NewFromInt(1000)
)

// ProductionWeight converts one day's raw counters into the produced mass in
// kilograms, rounded to 3 decimal places.
//
// Any finite input is accepted, including negative counters; plausibility is
// the operator's business, not the calculator's.
func ProductionWeight(runningDrum, openStockGrams, closingStockGrams, productionCones int) Weight {
	drum := decimal.NewFromInt(int64(runningDrum))
	open := decimal.NewFromInt(int64(openStockGrams))
	closing := decimal.NewFromInt(int64(closingStockGrams))
	cones := decimal.NewFromInt(int64(productionCones))

	part1 := drum.Mul(spoolTareGrams.Sub(open)).Div(gramsPerKg)
	part2 := closing.Mul(coneResidualGrams).Div(gramsPerKg)
	part3 := cones.Sub(drum).Mul(spoolTareGrams).Div(gramsPerKg)

	return Weight{value: part1.Add(part2).Add(part3).Round(3)}
}

// AmountFor values a produced weight at a per-kilogram rate, rounded to
// 2 decimal places.
func AmountFor(weight Weight, ratePerKg Money) Money {
	return weight.Mul(ratePerKg).Round(2)
}

// StockConsumption is the net stock consumed between the open and closing
// weighings, in kilograms. Negative means stock increased over the day.
func StockConsumption(openStockGrams, closingStockGrams int) Weight {
	return Grams(openStockGrams - closingStockGrams)
}
