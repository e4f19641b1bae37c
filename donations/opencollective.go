package donations

import (
	"fmt"
	"io"
	"log"

	"github.com/etnz/bursar"
)

// OpenCollective settles everything through Stripe, so every row lands on the
// "Stripe" account.
const (
	openCollectiveTag     = "OpenCollective"
	openCollectiveLayout  = "2006-01-02 15:04:05"
	openCollectiveAccount = "Stripe"
)

func importOpenCollective(ledger *bursar.Ledger, r io.Reader) error {
	account := ledger.Account(openCollectiveAccount)
	if account == nil {
		return fmt.Errorf("%q: %w", openCollectiveAccount, bursar.ErrAccountNotFound)
	}

	known := bursar.NewIDSet(account.DonationIDs()...)

	table, err := bursar.ReadTable(r)
	if err != nil {
		return err
	}

	var batch []bursar.Transaction
	for i, row := range table.Rows() {
		user, err := row.Get("User Name")
		if err != nil {
			return err
		}
		rawDate, err := row.Get("Transaction Date")
		if err != nil {
			return err
		}
		amountStr, err := row.Get("Transaction Amount")
		if err != nil {
			return err
		}
		hostFeeStr, err := row.Get("Host Fee (USD)")
		if err != nil {
			return err
		}
		ocFeeStr, err := row.Get("Open Collective Fee (USD)")
		if err != nil {
			return err
		}
		processorFeeStr, err := row.Get("Payment Processor Fee (USD)")
		if err != nil {
			return err
		}
		net, err := row.Get("Net Amount (USD)")
		if err != nil {
			return err
		}

		amount, err := parseAmount(amountStr, "transaction amount", i)
		if err != nil {
			return err
		}
		hostFee, err := parseAmount(hostFeeStr, "host fee", i)
		if err != nil {
			return err
		}
		ocFee, err := parseAmount(ocFeeStr, "OpenCollective fee", i)
		if err != nil {
			return err
		}
		processorFee, err := parseAmount(processorFeeStr, "payment processor fee", i)
		if err != nil {
			return err
		}
		date, err := parseDate(rawDate, openCollectiveLayout, i)
		if err != nil {
			return err
		}

		id := bursar.Fingerprint(openCollectiveTag, user, rawDate, net)
		if known.Has(id) {
			log.Printf("WARNING: donation from %q on %s (entry %d) is already in the ledger", user, rawDate, i)
			continue
		}
		known.Add(id)

		// The host fee is recorded and immediately offset by its negation:
		// the host waives its cut, but the gross fee stays on the books for
		// the audit trail. The fee columns in the export carry the processor
		// sign convention, hence the negations on the two real deductions.
		batch = append(batch, bursar.Transaction{
			Date:        date,
			Description: "Donation made through the OpenCollective platform",
			Amount:      amount,
			Meta:        bursar.Income{Donation: id, From: user},
			Fees: []bursar.Fee{
				{Amount: hostFee, Towards: "Collective Host (Amethyst Foundation)"},
				{Amount: hostFee.Neg(), Towards: "Collective Host (Amethyst Foundation)"},
				{Amount: ocFee.Neg(), Towards: "OpenCollective"},
				{Amount: processorFee.Neg(), Towards: "Payment Processor"},
			},
		})
	}

	appendSorted(account, batch)
	return nil
}
