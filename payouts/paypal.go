package payouts

import (
	"fmt"
	"io"
	"log"

	"github.com/etnz/bursar"
)

const (
	paypalTag         = "PayPal"
	paypalDateLayout  = "01/02/2006 15:04:05"
	paypalAccount     = "PayPal"
	paypalDestination = "Chase"
)

func importPayPal(ledger *bursar.Ledger, r io.Reader) error {
	paypal := ledger.Account(paypalAccount)
	if paypal == nil {
		return fmt.Errorf("%q: %w", paypalAccount, bursar.ErrAccountNotFound)
	}
	chase := ledger.Account(paypalDestination)
	if chase == nil {
		return fmt.Errorf("%q: %w", paypalDestination, bursar.ErrAccountNotFound)
	}

	known := bursar.NewIDSet(paypal.PayoutIDs()...)

	table, err := bursar.ReadTable(r)
	if err != nil {
		return err
	}

	var expenses, incomes []bursar.Transaction
	for i, row := range table.Rows() {
		rowID, err := row.Get("Transaction ID")
		if err != nil {
			return err
		}
		grossStr, err := row.Get("Gross")
		if err != nil {
			return err
		}
		rawDate, err := row.Get("Date")
		if err != nil {
			return err
		}

		gross, err := parseAmount(grossStr, "payout amount", i)
		if err != nil {
			return err
		}
		date, err := parseDate(rawDate, paypalDateLayout, i)
		if err != nil {
			return err
		}

		// PayPal reports money leaving the account as a negative gross;
		// the ledger stores the positive magnitude.
		amount := gross.Neg()

		id := bursar.Fingerprint(paypalTag, rowID)
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
				Towards:   paypalDestination,
				Requester: "[AUTOMATED]",
			},
		})
		incomes = append(incomes, bursar.Transaction{
			Date:        date,
			Description: "Automated payout from PayPal",
			Amount:      amount,
			Meta:        bursar.Income{From: "PayPal payout"},
		})
	}

	appendSorted(paypal, expenses)
	appendSorted(chase, incomes)
	return nil
}
