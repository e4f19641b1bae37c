package donations

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/etnz/bursar"
)

// DonorBox exports one combined file for all payment processors; each row is
// routed to the "Stripe" or "PayPal" account by its "Donation Type" column.
const (
	donorBoxTag           = "DonorBox"
	donorBoxDateLayout    = "2006-01-02 15:04:05"
	donorBoxStripeAccount = "Stripe"
	donorBoxPayPalAccount = "PayPal"
)

func importDonorBox(ledger *bursar.Ledger, r io.Reader) error {
	stripe := ledger.Account(donorBoxStripeAccount)
	if stripe == nil {
		return fmt.Errorf("%q: %w", donorBoxStripeAccount, bursar.ErrAccountNotFound)
	}
	paypal := ledger.Account(donorBoxPayPalAccount)
	if paypal == nil {
		return fmt.Errorf("%q: %w", donorBoxPayPalAccount, bursar.ErrAccountNotFound)
	}

	// Donations recorded on either account count as known: a row must not be
	// imported twice even if its processor routing were to change.
	known := bursar.NewIDSet(append(stripe.DonationIDs(), paypal.DonationIDs()...)...)

	table, err := bursar.ReadTable(r)
	if err != nil {
		return err
	}

	var toStripe, toPayPal []bursar.Transaction
	for i, row := range table.Rows() {
		rawDate, err := row.Get("Date Donated")
		if err != nil {
			return err
		}
		name, err := row.Get("Name")
		if err != nil {
			return err
		}
		amountStr, err := row.Get("Amount")
		if err != nil {
			return err
		}
		feeStr, err := row.Get("Processing Fee")
		if err != nil {
			return err
		}
		net, err := row.Get("Net Amount")
		if err != nil {
			return err
		}
		receipt, err := row.Get("Receipt Id")
		if err != nil {
			return err
		}
		processor, err := row.Get("Donation Type")
		if err != nil {
			return err
		}

		amount, err := parseAmount(amountStr, "transaction amount", i)
		if err != nil {
			return err
		}
		fee, err := parseAmount(feeStr, "processing fee", i)
		if err != nil {
			return err
		}
		date, err := parseDate(strings.TrimSuffix(rawDate, " UTC"), donorBoxDateLayout, i)
		if err != nil {
			return err
		}

		// The raw column values go into the hash, not the parsed ones.
		id := bursar.Fingerprint(donorBoxTag, name, rawDate, net, receipt)
		if known.Has(id) {
			log.Printf("WARNING: donation from %q on %s (entry %d) is already in the ledger", name, rawDate, i)
			continue
		}

		tx := bursar.Transaction{
			Date:        date,
			Description: "Donation made through the DonorBox platform",
			Amount:      amount,
			Meta:        bursar.Income{Donation: id, From: name},
			Fees:        []bursar.Fee{{Amount: fee, Towards: "DonorBox Processing"}},
		}

		switch processor {
		case "stripe":
			toStripe = append(toStripe, tx)
		case "paypal", "paypal_express":
			toPayPal = append(toPayPal, tx)
		default:
			log.Printf("WARNING: unknown donation method %q for donation from %q on %s (entry %d)", processor, name, rawDate, i)
			continue
		}
		known.Add(id)
	}

	appendSorted(stripe, toStripe)
	appendSorted(paypal, toPayPal)
	return nil
}

// appendSorted date-sorts a batch and appends it to the account journal.
func appendSorted(account *bursar.Account, batch []bursar.Transaction) {
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].Date.Before(batch[j].Date)
	})
	account.Append(batch...)
}
