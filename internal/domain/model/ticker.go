package model

import (
	"sort"
	"strings"
)

const quoteSuffix = "_usd"

var DefaultCurrencies = []string{"btc", "eth"}

// TickerFor maps a currency code to its canonical ticker, e.g. "BTC" -> "btc_usd".
func TickerFor(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency)) + quoteSuffix
}

// TickerSet is the allow-list of tickers accepted by the API.
type TickerSet map[string]struct{}

func NewTickerSet(currencies []string) TickerSet {
	set := make(TickerSet, len(currencies))
	for _, c := range currencies {
		if strings.TrimSpace(c) == "" {
			continue
		}
		set[TickerFor(c)] = struct{}{}
	}
	return set
}

func (s TickerSet) Contains(ticker string) bool {
	_, ok := s[ticker]
	return ok
}

// Sorted returns the tickers in lexical order.
func (s TickerSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
