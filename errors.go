package papertrade

import "errors"

// Domain errors returned by Account and Registry operations. They represent
// rejected preconditions, never transient failures: the operation did not
// happen and the account state is exactly as it was before the call.
// Callers match them with errors.Is and translate them at the boundary
// (HTTP status, CLI message).
var (
	// ErrInvalidAmount reports a non-positive amount or share quantity.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds reports a withdrawal or purchase that would
	// drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares reports a sale exceeding the held quantity.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrUnknownSymbol is returned by a price oracle that has no price
	// for the requested symbol and no fallback policy.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrNotFound reports an account id not present in the registry.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicateID reports an attempt to open an account under an id
	// that is already taken.
	ErrDuplicateID = errors.New("account id already exists")
)
