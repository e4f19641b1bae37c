package bursar

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"sort"
	"time"
)

var (
	// ErrDuplicateAccount is returned when creating an account whose name is
	// already taken in the ledger. Names match case-sensitively.
	ErrDuplicateAccount = errors.New("an account with that name already exists")
	// ErrAccountNotFound is the sentinel callers wrap when a named account is
	// missing from the ledger.
	ErrAccountNotFound = errors.New("account not found in the ledger")
)

// Account is a named container of an opening balance and an ordered
// transaction journal. It is owned exclusively by its Ledger.
type Account struct {
	Name           string        `json:"name"`
	OpeningDate    time.Time     `json:"opening_date"`
	OpeningBalance Money         `json:"opening_balance"`
	Transactions   []Transaction `json:"transactions"`
}

// Balance computes the current balance: the opening balance, plus the signed
// effect of each transaction, minus every fee of every transaction. Fees are
// subtracted as stored whatever their sign, a negative fee therefore raises
// the balance.
func (a *Account) Balance() Money {
	res := a.OpeningBalance
	for _, t := range a.Transactions {
		res = res.Add(t.Meta.EffectOnBalance(t.Amount))
		for _, f := range t.Fees {
			res = res.Sub(f.Amount)
		}
	}
	return res
}

// SortByDate stable-sorts the journal by date ascending. Call it after any
// bulk append so import order does not leak into displayed order.
func (a *Account) SortByDate() {
	sort.SliceStable(a.Transactions, func(i, j int) bool {
		return a.Transactions[i].Date.Before(a.Transactions[j].Date)
	})
}

// Append adds transactions to the end of the journal. It does not re-sort.
func (a *Account) Append(txs ...Transaction) {
	a.Transactions = append(a.Transactions, txs...)
}

// DonationIDs returns the deduplication ids of every donation recorded in the
// journal.
func (a *Account) DonationIDs() []ID {
	var ids []ID
	for _, t := range a.Transactions {
		if in, ok := t.Meta.(Income); ok && in.IsDonation() {
			ids = append(ids, in.Donation)
		}
	}
	return ids
}

// PayoutIDs returns the deduplication ids of every processor payout recorded
// in the journal.
func (a *Account) PayoutIDs() []ID {
	var ids []ID
	for _, t := range a.Transactions {
		if ex, ok := t.Meta.(Expense); ok && ex.IsPayout() {
			ids = append(ids, ex.Payout)
		}
	}
	return ids
}

// Ledger is the root persisted document: an ordered collection of accounts.
// Account order is insertion order, it carries no meaning beyond display.
type Ledger struct {
	accounts []*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make([]*Account, 0)}
}

// NewAccount appends a new account with an empty journal. It fails with
// ErrDuplicateAccount when the name is already taken.
func (l *Ledger) NewAccount(name string, openingBalance Money, openingDate time.Time) (*Account, error) {
	if l.Account(name) != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrDuplicateAccount)
	}
	a := &Account{
		Name:           name,
		OpeningDate:    openingDate,
		OpeningBalance: openingBalance,
		Transactions:   make([]Transaction, 0),
	}
	l.accounts = append(l.accounts, a)
	return a, nil
}

// Account returns the account with that exact name, or nil if absent. Callers
// must handle absence, typically by wrapping ErrAccountNotFound.
func (l *Ledger) Account(name string) *Account {
	for _, a := range l.accounts {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Index returns the position of the named account, or -1 if absent. It is the
// boundary between stable names and positional views: position math never
// needs to happen anywhere else.
func (l *Ledger) Index(name string) int {
	for i, a := range l.accounts {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// RemoveAccountAt removes the account at the given position. Accounts after it
// shift down one slot, in their original relative order.
func (l *Ledger) RemoveAccountAt(index int) error {
	if index < 0 || index >= len(l.accounts) {
		return fmt.Errorf("account index %d out of range [0,%d)", index, len(l.accounts))
	}
	l.accounts = append(l.accounts[:index], l.accounts[index+1:]...)
	return nil
}

// RemoveAccount removes the named account and reports whether it was present.
func (l *Ledger) RemoveAccount(name string) bool {
	i := l.Index(name)
	if i < 0 {
		return false
	}
	l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)
	return true
}

// Accounts returns an iterator over the accounts in ledger order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// SortByDate sorts every account's journal by date, stable, ascending.
func (l *Ledger) SortByDate() {
	for _, a := range l.accounts {
		a.SortByDate()
	}
}

// MarshalJSON writes the whole document in canonical form.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("accounts", l.accounts)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the whole document.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var temp struct {
		Accounts []*Account `json:"accounts"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	l.accounts = temp.Accounts
	if l.accounts == nil {
		l.accounts = make([]*Account, 0)
	}
	return nil
}

// MarshalJSON writes the account in canonical field order.
func (a *Account) MarshalJSON() ([]byte, error) {
	txs := a.Transactions
	if txs == nil {
		txs = []Transaction{}
	}
	var w jsonObjectWriter
	w.Append("name", a.Name)
	w.Append("opening_date", a.OpeningDate)
	w.Append("opening_balance", a.OpeningBalance)
	w.Append("transactions", txs)
	return w.MarshalJSON()
}
