package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a currency value with exactly two decimals and the
// decimal comma, e.g. 182 -> "182,00".
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatBRL prefixes the currency symbol: "R$ 182,00".
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + FormatAmount(d)
}
