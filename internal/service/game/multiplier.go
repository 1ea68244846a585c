package game

import "github.com/shopspring/decimal"

var (
	multBase = decimal.RequireFromString("1.2")
	multStep = decimal.RequireFromString("0.1")
)

// multiplierFor - кусочная функция множителя от ставки:
// risk <= 10 -> 1.0; 11..20 -> 1.2; дальше +0.1 за каждые полные 10
func multiplierFor(risk int) decimal.Decimal {
	switch {
	case risk <= 10:
		return decimal.NewFromInt(1)
	case risk <= 20:
		return multBase
	default:
		steps := int64((risk - 20) / 10)
		return multBase.Add(multStep.Mul(decimal.NewFromInt(steps)))
	}
}

// applyMultiplier - итоговая выплата floor(base * multiplier).
// Decimal вместо float, чтобы floor не ловил двоичные артефакты
func applyMultiplier(base int, mult decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(base)).Mul(mult).Floor().IntPart())
}
