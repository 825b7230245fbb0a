package ledgible

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
)

// Commodity summarizes how a currency symbol is used across the postings of a journal.
type Commodity struct {
	Symbol    string
	Prepend   bool // placement of the symbol in its first occurrence
	Postings  int  // number of postings using it
	Precision int  // largest number of decimal digits written
	// ISO is the ISO 4217 currency matching the symbol, or nil when the
	// symbol is not a currency code.
	ISO *money.Currency
}

// Commodities lists the currency symbols used by posting amounts, sorted by symbol.
// Postings without an amount, or with an amount without symbol, are ignored.
func Commodities(lines []Line) ([]Commodity, error) {
	bySymbol := make(map[string]*Commodity)
	for _, line := range lines {
		if line.Kind != PostingLine || line.AmountField() == "" {
			continue
		}
		amount, err := ParseAmount(line.AmountField())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line.Number, err)
		}
		if !amount.HasCurrency() {
			continue
		}
		c, ok := bySymbol[amount.Currency.Symbol]
		if !ok {
			c = &Commodity{
				Symbol:  amount.Currency.Symbol,
				Prepend: amount.Currency.Prepend,
				ISO:     money.GetCurrency(strings.ToUpper(amount.Currency.Symbol)),
			}
			bySymbol[c.Symbol] = c
		}
		c.Postings++
		c.Precision = max(c.Precision, amount.Precision)
	}

	commodities := make([]Commodity, 0, len(bySymbol))
	for _, c := range bySymbol {
		commodities = append(commodities, *c)
	}
	sort.Slice(commodities, func(i, j int) bool { return commodities[i].Symbol < commodities[j].Symbol })
	return commodities, nil
}
