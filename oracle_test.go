package papertrade

import (
	"errors"
	"testing"
)

func TestStaticOracle(t *testing.T) {
	table := map[string]Money{"AAPL": USD(170)}

	t.Run("known symbol", func(t *testing.T) {
		got, err := NewStaticOracle(table).PriceOf("AAPL")
		if err != nil {
			t.Fatalf("PriceOf(AAPL) failed: %v", err)
		}
		if !got.Equal(USD(170)) {
			t.Errorf("PriceOf(AAPL) = %s, want %s", got, USD(170))
		}
	})

	t.Run("unknown symbol without fallback", func(t *testing.T) {
		_, err := NewStaticOracle(table).PriceOf("NVDA")
		if !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("PriceOf(NVDA) error = %v, want ErrUnknownSymbol", err)
		}
	})

	t.Run("unknown symbol with fallback", func(t *testing.T) {
		got, err := NewStaticOracle(table).WithFallback(USD(100)).PriceOf("NVDA")
		if err != nil {
			t.Fatalf("PriceOf(NVDA) failed: %v", err)
		}
		if !got.Equal(USD(100)) {
			t.Errorf("PriceOf(NVDA) = %s, want fallback %s", got, USD(100))
		}
	})

	t.Run("table is copied", func(t *testing.T) {
		o := NewStaticOracle(table)
		table["AAPL"] = USD(1)
		defer func() { table["AAPL"] = USD(170) }()
		got, err := o.PriceOf("AAPL")
		if err != nil {
			t.Fatalf("PriceOf(AAPL) failed: %v", err)
		}
		if !got.Equal(USD(170)) {
			t.Errorf("oracle aliases the caller's table: got %s", got)
		}
	})
}

func TestPriceFunc(t *testing.T) {
	oracle := PriceFunc(func(symbol string) (Money, error) {
		return USD(42), nil
	})
	got, err := oracle.PriceOf("ANY")
	if err != nil || !got.Equal(USD(42)) {
		t.Errorf("PriceOf() = %s, %v; want %s, nil", got, err, USD(42))
	}
}
