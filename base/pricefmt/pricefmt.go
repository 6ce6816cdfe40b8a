package pricefmt

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a base-unit amount as a display-unit decimal string,
// e.g. FormatAmount(1234500, 6) == "1.2345" for a six decimal currency.
func FormatAmount(amount uint64, decimals int32) string {
	v := new(big.Int).SetUint64(amount)
	return decimal.NewFromBigInt(v, -decimals).String()
}

// FormatAmounts renders a list of base-unit amounts with FormatAmount.
func FormatAmounts(amounts []uint64, decimals int32) []string {
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = FormatAmount(a, decimals)
	}
	return out
}
