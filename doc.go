// Package papertrade implements an in-memory trading-account ledger.
//
// The core type is Account: it owns a cash balance, per-symbol share
// holdings, and an append-only transaction log. Every mutation (deposit,
// withdraw, buy, sell) validates its preconditions against the current
// state, applies the whole state change, then appends exactly one
// immutable Transaction. A rejected mutation leaves the account untouched.
//
// Share prices come from a PriceOracle supplied by the caller on every
// trade or valuation; the ledger never caches or owns prices. Valuations
// (portfolio value, profit/loss) are pure folds of the current holdings
// against the oracle.
//
// This package is the foundation for the `pts` command-line tool and the
// HTTP API in the server subpackage, which consume the Account operations
// as their entire contract with the ledger.
package papertrade
