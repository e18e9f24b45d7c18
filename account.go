package papertrade

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// Account is a trading-account ledger: a cash balance, per-symbol share
// holdings, and an append-only transaction log.
//
// Mutations follow a strict validate-then-apply contract: all preconditions
// are checked against the current state, then the balance, holdings and log
// change together, or nothing changes at all. Holdings never carry a
// zero-quantity entry and the balance never goes negative.
//
// An Account serializes its own operations with a mutex, so a single
// instance is safe to share between the HTTP handlers.
type Account struct {
	mu sync.Mutex

	id             string
	balance        Money
	initialDeposit Money
	holdings       map[string]int64
	transactions   []Transaction

	// now supplies transaction timestamps; tests override it.
	now func() time.Time
}

// NewAccount opens an account with an identifier and an initial deposit.
// The initial deposit is the baseline for profit/loss and never changes.
// A negative initial deposit is rejected with ErrInvalidAmount; zero is
// allowed (an empty account to fund later).
func NewAccount(id string, initialDeposit Money) (*Account, error) {
	if initialDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: initial deposit %s", ErrInvalidAmount, initialDeposit)
	}
	return &Account{
		id:             id,
		balance:        initialDeposit,
		initialDeposit: initialDeposit,
		holdings:       make(map[string]int64),
		now:            time.Now,
	}, nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// InitialDeposit returns the opening deposit, the profit/loss baseline.
func (a *Account) InitialDeposit() Money { return a.initialDeposit }

// stamp returns the timestamp for the next transaction, clamped so the
// log stays monotonically non-decreasing even if the wall clock steps back.
func (a *Account) stamp() time.Time {
	t := a.now()
	if n := len(a.transactions); n > 0 {
		if last := a.transactions[n-1].Time; t.Before(last) {
			t = last
		}
	}
	return t
}

// Deposit adds funds to the account.
func (a *Account) Deposit(amount Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit %s", ErrInvalidAmount, amount)
	}
	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, Transaction{
		Kind:   TxDeposit,
		Amount: amount,
		Time:   a.stamp(),
	})
	return nil
}

// Withdraw removes funds from the account. There is no partial
// withdrawal: the full amount is available or the call is rejected.
func (a *Account) Withdraw(amount Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal %s", ErrInvalidAmount, amount)
	}
	if a.balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s, withdrawal %s", ErrInsufficientFunds, a.balance, amount)
	}
	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, Transaction{
		Kind:   TxWithdraw,
		Amount: amount,
		Time:   a.stamp(),
	})
	return nil
}

// Buy purchases quantity shares of symbol at the oracle's current price.
// The price is read exactly once, before any state changes, so the logged
// price is the price that debited the balance. An oracle error propagates
// unchanged and leaves the account untouched.
func (a *Account) Buy(symbol string, quantity int64, oracle PriceOracle) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if quantity <= 0 {
		return fmt.Errorf("%w: buy quantity %d", ErrInvalidAmount, quantity)
	}
	price, err := oracle.PriceOf(symbol)
	if err != nil {
		return err
	}
	cost := price.MulQty(quantity)
	if a.balance.LessThan(cost) {
		return fmt.Errorf("%w: balance %s, cost %s", ErrInsufficientFunds, a.balance, cost)
	}

	a.balance = a.balance.Sub(cost)
	a.holdings[symbol] += quantity
	a.transactions = append(a.transactions, Transaction{
		Kind:     TxBuy,
		Amount:   cost,
		Symbol:   symbol,
		Quantity: quantity,
		Price:    price,
		Time:     a.stamp(),
	})
	return nil
}

// Sell disposes of quantity shares of symbol at the oracle's current
// price. The symbol's holdings entry is removed the moment it reaches
// zero. The held quantity is checked before the oracle is consulted, so a
// hopeless sale never touches the oracle.
func (a *Account) Sell(symbol string, quantity int64, oracle PriceOracle) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if quantity <= 0 {
		return fmt.Errorf("%w: sell quantity %d", ErrInvalidAmount, quantity)
	}
	held := a.holdings[symbol]
	if held < quantity {
		return fmt.Errorf("%w: %d %s held, %d to sell", ErrInsufficientShares, held, symbol, quantity)
	}
	price, err := oracle.PriceOf(symbol)
	if err != nil {
		return err
	}
	proceeds := price.MulQty(quantity)

	a.balance = a.balance.Add(proceeds)
	a.holdings[symbol] -= quantity
	if a.holdings[symbol] == 0 {
		delete(a.holdings, symbol)
	}
	a.transactions = append(a.transactions, Transaction{
		Kind:     TxSell,
		Amount:   proceeds,
		Symbol:   symbol,
		Quantity: quantity,
		Price:    price,
		Time:     a.stamp(),
	})
	return nil
}

// Balance returns the current cash balance.
func (a *Account) Balance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Holdings returns a snapshot of the current holdings. Mutating the
// returned map does not affect the account.
func (a *Account) Holdings() map[string]int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return maps.Clone(a.holdings)
}

// PortfolioValue returns the cash balance plus the oracle valuation of
// every held position.
func (a *Account) PortfolioValue(oracle PriceOracle) (Money, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.valuation(oracle)
}

// valuation folds holdings against the oracle. Callers hold the mutex.
// Symbols are visited in sorted order so an oracle failure is deterministic.
func (a *Account) valuation(oracle PriceOracle) (Money, error) {
	total := a.balance
	for _, symbol := range slices.Sorted(maps.Keys(a.holdings)) {
		price, err := oracle.PriceOf(symbol)
		if err != nil {
			return Money{}, err
		}
		total = total.Add(price.MulQty(a.holdings[symbol]))
	}
	return total, nil
}

// ProfitLoss returns the portfolio value minus the initial deposit. It is
// negative when the account is under water.
func (a *Account) ProfitLoss(oracle PriceOracle) (Money, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	value, err := a.valuation(oracle)
	if err != nil {
		return Money{}, err
	}
	return value.Sub(a.initialDeposit), nil
}

// Transactions returns the chronological transaction log. The returned
// slice is a copy; records themselves are immutable.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.transactions)
}
