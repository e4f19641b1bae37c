package bursar

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// exportHeader is the fixed column contract of the accountant-friendly report.
var exportHeader = []string{"account", "kind", "date", "amount", "fees", "description", "paid_to", "paid_by"}

// Export flattens the ledger into a single CSV report without mutating it.
// Each account contributes one Opening row (amount is the negated opening
// balance) followed by one row per transaction in journal order. Incomes and
// donations are reported with their amount negated: the ledger stores income
// magnitudes positively, the report expresses them with the destination
// account's inflow sign. That negation is part of the report contract.
func Export(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("could not write report header: %w", err)
	}
	for account := range ledger.Accounts() {
		opening := []string{
			account.Name,
			"Opening",
			account.OpeningDate.Format(time.RFC3339),
			account.OpeningBalance.Neg().String(),
			"", // fees
			"", // description
			"", // paid_to
			"", // paid_by
		}
		if err := cw.Write(opening); err != nil {
			return fmt.Errorf("could not write opening row for %q: %w", account.Name, err)
		}
		for _, t := range account.Transactions {
			row, err := exportRow(account.Name, t)
			if err != nil {
				return err
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("could not write row for %q: %w", account.Name, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// exportRow classifies a transaction into one of the four report kinds and
// renders it.
func exportRow(account string, t Transaction) ([]string, error) {
	var kind, amount, paidTo, paidBy string
	switch meta := t.Meta.(type) {
	case Expense:
		if meta.IsPayout() {
			kind = "Payout"
		} else {
			kind = "Expense"
		}
		amount = t.Amount.String()
		paidTo = meta.Towards
	case Income:
		if meta.IsDonation() {
			kind = "Donation"
		} else {
			kind = "Income"
		}
		amount = t.Amount.Neg().String()
		paidBy = meta.From
	default:
		return nil, fmt.Errorf("account %q: unsupported transaction metadata %T", account, t.Meta)
	}
	return []string{
		account,
		kind,
		t.Date.Format(time.RFC3339),
		amount,
		formatFees(t.Fees),
		t.Description,
		paidTo,
		paidBy,
	}, nil
}

// formatFees joins a fee list into the single report field
// "amount[towards];amount[towards]" with no trailing separator.
func formatFees(fees []Fee) string {
	parts := make([]string, len(fees))
	for i, f := range fees {
		parts[i] = fmt.Sprintf("%s[%s]", f.Amount, f.Towards)
	}
	return strings.Join(parts, ";")
}
