package papertrade

import (
	"fmt"
	"maps"
)

// PriceOracle supplies the current unit price for a ticker symbol. It is a
// capability passed by the caller into every trade and valuation; the
// ledger never caches or re-queries a price within one operation.
type PriceOracle interface {
	PriceOf(symbol string) (Money, error)
}

// PriceFunc adapts a plain function to the PriceOracle interface.
type PriceFunc func(symbol string) (Money, error)

func (f PriceFunc) PriceOf(symbol string) (Money, error) { return f(symbol) }

// StaticOracle resolves prices from a fixed table, with an optional
// fallback price for symbols not in the table. Whether unknown symbols
// are tradable is the oracle's policy, not the ledger's: without a
// fallback, PriceOf returns ErrUnknownSymbol.
type StaticOracle struct {
	prices   map[string]Money
	fallback Money
	hasFall  bool
}

// NewStaticOracle creates an oracle over a copy of the given price table.
func NewStaticOracle(prices map[string]Money) *StaticOracle {
	return &StaticOracle{prices: maps.Clone(prices)}
}

// WithFallback returns the oracle with a default price for unknown
// symbols.
func (o *StaticOracle) WithFallback(price Money) *StaticOracle {
	o.fallback = price
	o.hasFall = true
	return o
}

func (o *StaticOracle) PriceOf(symbol string) (Money, error) {
	if price, ok := o.prices[symbol]; ok {
		return price, nil
	}
	if o.hasFall {
		return o.fallback, nil
	}
	return Money{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
}
