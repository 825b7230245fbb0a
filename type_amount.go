package ledgible

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Currency is the commodity symbol attached to an amount.
//
// An empty Symbol means the amount has no currency.
type Currency struct {
	Symbol  string
	Prepend bool // the symbol was written before the number
	Spaced  bool // a suffix symbol was separated from the number by whitespace
}

// Amount is a posting amount decomposed into an integer mantissa and a
// number of decimal digits.
//
// The value is Mantissa * 10^-Precision.
type Amount struct {
	Mantissa  int64
	Precision int
	Currency  Currency
}

// Decimal returns the numeric value of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.Mantissa, -int32(a.Precision))
}

// HasCurrency reports whether the amount carries a currency symbol.
func (a Amount) HasCurrency() bool { return a.Currency.Symbol != "" }

// String renders the amount in canonical form.
//
// Thousands separators are never written. A prepended symbol is followed by
// one space, except for negative amounts where it sticks to the sign.
func (a Amount) String() string {
	number := a.Decimal().StringFixed(int32(a.Precision))
	if !a.HasCurrency() {
		return number
	}
	if !a.Currency.Prepend {
		if a.Currency.Spaced {
			return number + " " + a.Currency.Symbol
		}
		return number + a.Currency.Symbol
	}
	if a.Mantissa < 0 {
		return a.Currency.Symbol + number
	}
	return a.Currency.Symbol + " " + number
}

var errNoNumber = errors.New("no numeric part")

// ParseAmount decomposes an amount token like "$1,234.50", "-3 EUR" or "10.00".
//
// Grouping separators are dropped: "$1,234.50" renders back as "$ 1234.50".
// A sign written before a prepended symbol belongs to the number: "-$10"
// renders back as "$-10".
func ParseAmount(token string) (Amount, error) {
	if rest, ok := strings.CutPrefix(token, "-"); ok && signedSymbol(rest) {
		if strings.ContainsRune(rest, '-') {
			return Amount{}, &AmountParseError{Token: token, Err: errors.New("more than one sign")}
		}
		a, err := parseRuns(rest)
		if err != nil {
			return Amount{}, &AmountParseError{Token: token, Err: err}
		}
		a.Mantissa = -a.Mantissa
		return a, nil
	}
	a, err := parseRuns(token)
	if err != nil {
		return Amount{}, &AmountParseError{Token: token, Err: err}
	}
	return a, nil
}

// signedSymbol reports whether s, the rest of a token after a leading '-',
// starts with a currency symbol.
func signedSymbol(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && !isNumberComponent(r) && !unicode.IsSpace(r)
}

// parseRuns splits a token into one numeric run and at most one currency run.
func parseRuns(token string) (Amount, error) {
	var number, symbol strings.Builder
	numberAt, symbolAt := -1, -1
	gapBeforeSymbol := false // whitespace between the number and a suffix symbol

	const (
		none = iota
		inNumber
		inSymbol
	)
	state := none
	for i, r := range token {
		switch {
		case isNumberComponent(r):
			if state == inNumber {
				number.WriteRune(r)
				continue
			}
			if numberAt >= 0 {
				return Amount{}, errors.New("more than one numeric part")
			}
			numberAt, state = i, inNumber
			number.WriteRune(r)
		case unicode.IsSpace(r):
			if numberAt >= 0 && symbolAt < 0 {
				gapBeforeSymbol = true
			}
			state = none
		default:
			if state == inSymbol {
				symbol.WriteRune(r)
				continue
			}
			if symbolAt >= 0 {
				return Amount{}, errors.New("more than one currency symbol")
			}
			symbolAt, state = i, inSymbol
			symbol.WriteRune(r)
		}
	}
	if numberAt < 0 {
		return Amount{}, errNoNumber
	}

	digits := strings.TrimSpace(strings.ReplaceAll(number.String(), ",", ""))
	precision := 0
	if dot := strings.LastIndexByte(digits, '.'); dot >= 0 {
		precision = len(digits) - dot - 1
		digits = digits[:dot] + digits[dot+1:]
	}
	mantissa, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Amount{}, err
	}

	a := Amount{Mantissa: mantissa, Precision: precision}
	if symbolAt >= 0 {
		a.Currency = Currency{Symbol: symbol.String(), Prepend: symbolAt < numberAt}
		if !a.Currency.Prepend {
			a.Currency.Spaced = gapBeforeSymbol
		}
	}
	return a, nil
}

// HasStatus reports whether an account field starts with a status marker
// ("* " cleared or "! " pending).
func HasStatus(account string) bool {
	return len(account) >= 2 && (account[0] == '*' || account[0] == '!') && account[1] == ' '
}

func isNumberComponent(r rune) bool {
	return ('0' <= r && r <= '9') || r == '-' || r == '.' || r == ','
}
