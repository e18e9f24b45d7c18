// Package server exposes the account registry over HTTP. It is a thin
// boundary: handlers parse the request, call one ledger operation, and
// translate the domain error kind into a status code. The registry and
// the price oracle are injected, never package state.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/simbroker/papertrade"
)

// Server wires the account registry and the price oracle to the HTTP API.
type Server struct {
	registry *papertrade.Registry
	oracle   papertrade.PriceOracle
	currency string
}

// New creates a Server over the given registry and oracle. Deposits and
// withdrawals are denominated in currency.
func New(registry *papertrade.Registry, oracle papertrade.PriceOracle, currency string) *Server {
	return &Server{registry: registry, oracle: oracle, currency: currency}
}

// Router builds the chi router for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", s.openAccount)
		r.Get("/", s.listAccounts)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getAccount)
			r.Get("/transactions", s.listTransactions)
			r.Post("/deposit", s.deposit)
			r.Post("/withdraw", s.withdraw)
			r.Post("/buy", s.buy)
			r.Post("/sell", s.sell)
		})
	})
	return r
}
