package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/simbroker/papertrade"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a domain error kind to its HTTP status. Precondition
// rejections are the caller's fault (400/409); anything unrecognized is a
// 500, since the ledger never returns transient errors.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, papertrade.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, papertrade.ErrInvalidAmount),
		errors.Is(err, papertrade.ErrUnknownSymbol):
		status = http.StatusBadRequest
	case errors.Is(err, papertrade.ErrInsufficientFunds),
		errors.Is(err, papertrade.ErrInsufficientShares),
		errors.Is(err, papertrade.ErrDuplicateID):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
