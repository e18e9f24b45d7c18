package cmd

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/simbroker/papertrade"
	"github.com/simbroker/papertrade/server"
)

// newTestClient wires the client against an in-process API server.
func newTestClient(t *testing.T) *client {
	t.Helper()
	oracle := papertrade.NewStaticOracle(map[string]papertrade.Money{
		"AAPL": papertrade.M(170, "USD"),
	}).WithFallback(papertrade.M(100, "USD"))
	ts := httptest.NewServer(server.New(papertrade.NewRegistry(), oracle, "USD").Router())
	t.Cleanup(ts.Close)
	return &client{base: ts.URL, hc: ts.Client()}
}

func TestClientSession(t *testing.T) {
	c := newTestClient(t)

	snap, err := c.open("alice", 1000)
	if err != nil {
		t.Fatalf("open() failed: %v", err)
	}
	if snap.ID != "alice" || !snap.Balance.Equal(papertrade.M(1000, "USD")) {
		t.Errorf("open() = %+v, want alice with 1000", snap)
	}

	if snap, err = c.cash("alice", "deposit", 500); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if !snap.Balance.Equal(papertrade.M(1500, "USD")) {
		t.Errorf("balance after deposit = %s, want $1,500.00", snap.Balance)
	}

	if snap, err = c.trade("alice", "buy", "AAPL", 2); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if snap.Holdings["AAPL"] != 2 {
		t.Errorf("holdings after buy = %v, want AAPL:2", snap.Holdings)
	}

	txs, err := c.transactions("alice")
	if err != nil {
		t.Fatalf("transactions failed: %v", err)
	}
	if len(txs) != 2 {
		t.Errorf("got %d transactions, want 2", len(txs))
	}
}

func TestClientSurfacesServerErrors(t *testing.T) {
	c := newTestClient(t)
	if _, err := c.open("alice", 1000); err != nil {
		t.Fatalf("open() failed: %v", err)
	}

	_, err := c.cash("alice", "withdraw", 5000)
	if err == nil {
		t.Fatal("overdraw did not fail")
	}
	if !strings.Contains(err.Error(), "insufficient funds") {
		t.Errorf("error %q does not carry the server's message", err)
	}

	if _, err := c.get("ghost"); err == nil {
		t.Error("get(ghost) did not fail")
	}
}
