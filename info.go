package bursar

import "fmt"

// GrossReceipts sums the amount of every income transaction (general or
// donation) across the named accounts. Expenses are ignored and fees are not
// netted out: gross means gross. It fails if any named account is missing.
func GrossReceipts(ledger *Ledger, names ...string) (Money, error) {
	var total Money
	for _, name := range names {
		account := ledger.Account(name)
		if account == nil {
			return Money{}, fmt.Errorf("%q: %w", name, ErrAccountNotFound)
		}
		for _, t := range account.Transactions {
			if t.Meta.Tag() == MetaIncome {
				total = total.Add(t.Amount)
			}
		}
	}
	return total, nil
}
