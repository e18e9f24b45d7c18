package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/simbroker/papertrade"
)

// snapshot mirrors the server's account view.
type snapshot struct {
	ID             string           `json:"id"`
	Balance        papertrade.Money `json:"balance"`
	InitialDeposit papertrade.Money `json:"initial_deposit"`
	Holdings       map[string]int64 `json:"holdings"`
	PortfolioValue papertrade.Money `json:"portfolio_value"`
	ProfitLoss     papertrade.Money `json:"profit_loss"`
}

// client is a thin HTTP client for the papertrade API.
type client struct {
	base string
	hc   *http.Client
}

func newClient() *client {
	return &client{base: *serverAddr, hc: http.DefaultClient}
}

// call sends an optional JSON body and decodes the JSON response into out.
// A non-2xx response is returned as an error carrying the server's message.
func (c *client) call(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w (is the server running? start it with `pts serve`)", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server rejected %s: %s", path, apiErr.Error)
		}
		return fmt.Errorf("server rejected %s: %s", path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *client) open(id string, initialDeposit float64) (snapshot, error) {
	var snap snapshot
	err := c.call(http.MethodPost, "/accounts", map[string]any{
		"id": id, "initial_deposit": initialDeposit,
	}, &snap)
	return snap, err
}

func (c *client) cash(account, op string, amount float64) (snapshot, error) {
	var snap snapshot
	err := c.call(http.MethodPost, "/accounts/"+account+"/"+op, map[string]any{
		"amount": amount,
	}, &snap)
	return snap, err
}

func (c *client) trade(account, op, symbol string, quantity int64) (snapshot, error) {
	var snap snapshot
	err := c.call(http.MethodPost, "/accounts/"+account+"/"+op, map[string]any{
		"symbol": symbol, "quantity": quantity,
	}, &snap)
	return snap, err
}

func (c *client) get(account string) (snapshot, error) {
	var snap snapshot
	err := c.call(http.MethodGet, "/accounts/"+account, nil, &snap)
	return snap, err
}

func (c *client) transactions(account string) ([]papertrade.Transaction, error) {
	var out struct {
		Transactions []papertrade.Transaction `json:"transactions"`
	}
	err := c.call(http.MethodGet, "/accounts/"+account+"/transactions", nil, &out)
	return out.Transactions, err
}
