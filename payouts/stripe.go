package payouts

import (
	"fmt"
	"io"
	"log"

	"github.com/etnz/bursar"
)

const (
	stripeTag         = "Stripe"
	stripeDateLayout  = "2006-01-02 15:04"
	stripeAccount     = "Stripe"
	stripeDestination = "Chase"
)

func importStripe(ledger *bursar.Ledger, r io.Reader) error {
	stripe := ledger.Account(stripeAccount)
	if stripe == nil {
		return fmt.Errorf("%q: %w", stripeAccount, bursar.ErrAccountNotFound)
	}
	chase := ledger.Account(stripeDestination)
	if chase == nil {
		return fmt.Errorf("%q: %w", stripeDestination, bursar.ErrAccountNotFound)
	}

	known := bursar.NewIDSet(stripe.PayoutIDs()...)

	table, err := bursar.ReadTable(r)
	if err != nil {
		return err
	}

	var expenses, incomes []bursar.Transaction
	for i, row := range table.Rows() {
		rowID, err := row.Get("id")
		if err != nil {
			return err
		}
		amountStr, err := row.Get("Amount")
		if err != nil {
			return err
		}
		rawDate, err := row.Get("Created (UTC)")
		if err != nil {
			return err
		}

		amount, err := parseAmount(amountStr, "payout amount", i)
		if err != nil {
			return err
		}
		date, err := parseDate(rawDate, stripeDateLayout, i)
		if err != nil {
			return err
		}

		id := bursar.Fingerprint(stripeTag, rowID)
		if known.Has(id) {
			log.Printf("WARNING: payout made on %s (entry %d) is already in the ledger", rawDate, i)
			continue
		}
		known.Add(id)

		expenses = append(expenses, bursar.Transaction{
			Date:        date,
			Description: "Automated payout to the Chase account",
			Amount:      amount,
			Meta: bursar.Expense{
				Payout:    id,
				Towards:   stripeDestination,
				Requester: "[AUTOMATED]",
			},
		})
		incomes = append(incomes, bursar.Transaction{
			Date:        date,
			Description: "Automated payout from Stripe",
			Amount:      amount,
			Meta:        bursar.Income{From: "Stripe payout"},
		})
	}

	appendSorted(stripe, expenses)
	appendSorted(chase, incomes)
	return nil
}
