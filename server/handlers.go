package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simbroker/papertrade"
)

// accountSnapshot is the read view of an account: the ledger's read
// operations folded through the server's oracle.
type accountSnapshot struct {
	ID             string           `json:"id"`
	Balance        papertrade.Money `json:"balance"`
	InitialDeposit papertrade.Money `json:"initial_deposit"`
	Holdings       map[string]int64 `json:"holdings"`
	PortfolioValue papertrade.Money `json:"portfolio_value"`
	ProfitLoss     papertrade.Money `json:"profit_loss"`
}

func (s *Server) snapshot(a *papertrade.Account) (accountSnapshot, error) {
	value, err := a.PortfolioValue(s.oracle)
	if err != nil {
		return accountSnapshot{}, err
	}
	pnl, err := a.ProfitLoss(s.oracle)
	if err != nil {
		return accountSnapshot{}, err
	}
	return accountSnapshot{
		ID:             a.ID(),
		Balance:        a.Balance(),
		InitialDeposit: a.InitialDeposit(),
		Holdings:       a.Holdings(),
		PortfolioValue: value,
		ProfitLoss:     pnl,
	}, nil
}

type openRequest struct {
	ID             string  `json:"id,omitempty"`
	InitialDeposit float64 `json:"initial_deposit"`
}

func (s *Server) openAccount(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	account, err := s.registry.Open(req.ID, papertrade.M(req.InitialDeposit, s.currency))
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.snapshot(account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"accounts": s.registry.List()})
}

// account resolves the {id} path parameter, writing the 404 itself when
// the account does not exist.
func (s *Server) account(w http.ResponseWriter, r *http.Request) (*papertrade.Account, bool) {
	account, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return account, true
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := s.account(w, r)
	if !ok {
		return
	}
	snap, err := s.snapshot(account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	account, ok := s.account(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string][]papertrade.Transaction{
		"transactions": account.Transactions(),
	})
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	s.cashOp(w, r, (*papertrade.Account).Deposit)
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	s.cashOp(w, r, (*papertrade.Account).Withdraw)
}

func (s *Server) cashOp(w http.ResponseWriter, r *http.Request, op func(*papertrade.Account, papertrade.Money) error) {
	account, ok := s.account(w, r)
	if !ok {
		return
	}
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := op(account, papertrade.M(req.Amount, s.currency)); err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.snapshot(account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type tradeRequest struct {
	Symbol   string `json:"symbol"`
	Quantity int64  `json:"quantity"`
}

func (s *Server) buy(w http.ResponseWriter, r *http.Request) {
	s.tradeOp(w, r, (*papertrade.Account).Buy)
}

func (s *Server) sell(w http.ResponseWriter, r *http.Request) {
	s.tradeOp(w, r, (*papertrade.Account).Sell)
}

func (s *Server) tradeOp(w http.ResponseWriter, r *http.Request, op func(*papertrade.Account, string, int64, papertrade.PriceOracle) error) {
	account, ok := s.account(w, r)
	if !ok {
		return
	}
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Symbol == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "symbol is required"})
		return
	}
	if err := op(account, req.Symbol, req.Quantity, s.oracle); err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.snapshot(account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
