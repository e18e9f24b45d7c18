package papertrade

import "time"

// TxKind is a typed string identifying the kind of a ledger transaction.
type TxKind string

// Transaction kinds recorded in the ledger.
const (
	TxDeposit  TxKind = "deposit"
	TxWithdraw TxKind = "withdraw"
	TxBuy      TxKind = "buy"
	TxSell     TxKind = "sell"
)

// Transaction is an immutable record of one committed account mutation.
//
// Amount is always the positive magnitude of the cash movement; its
// direction is implied by Kind. Symbol, Quantity and Price are set only
// for buy and sell records. Timestamps are non-decreasing in log order.
type Transaction struct {
	Kind     TxKind    `json:"kind"`
	Amount   Money     `json:"amount"`
	Symbol   string    `json:"symbol,omitempty"`
	Quantity int64     `json:"quantity,omitempty"`
	Price    Money     `json:"price,omitzero"`
	Time     time.Time `json:"time"`
}

// Replay folds a transaction log over an opening balance and returns the
// resulting balance and holdings. It is the audit primitive: replaying
// Account.Transactions from the initial deposit must reproduce the
// account's current state exactly.
func Replay(initial Money, log []Transaction) (balance Money, holdings map[string]int64) {
	balance = initial
	holdings = make(map[string]int64)
	for _, tx := range log {
		switch tx.Kind {
		case TxDeposit:
			balance = balance.Add(tx.Amount)
		case TxWithdraw:
			balance = balance.Sub(tx.Amount)
		case TxBuy:
			balance = balance.Sub(tx.Amount)
			holdings[tx.Symbol] += tx.Quantity
		case TxSell:
			balance = balance.Add(tx.Amount)
			holdings[tx.Symbol] -= tx.Quantity
			if holdings[tx.Symbol] == 0 {
				delete(holdings, tx.Symbol)
			}
		}
	}
	return balance, holdings
}
