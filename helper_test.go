package papertrade

import "testing"

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// refOracle is the reference price table used across tests.
var refOracle = NewStaticOracle(map[string]Money{
	"AAPL":  USD(170),
	"TSLA":  USD(250),
	"GOOGL": USD(2700),
}).WithFallback(USD(100))

// open creates a USD test account, failing the test on error.
func open(t *testing.T, initial float64) *Account {
	t.Helper()
	a, err := NewAccount("test-account", USD(initial))
	if err != nil {
		t.Fatalf("NewAccount() failed: %v", err)
	}
	return a
}
