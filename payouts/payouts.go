// Package payouts imports payout-processor exports into the ledger.
//
// Each payout row produces two correlated legs: an expense on the processor
// account and a matching income on the destination bank account, dated
// identically. Only the expense leg carries the deduplication id, so known
// ids are gathered from the processor account alone.
package payouts

import (
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/etnz/bursar"
)

// Origin names a supported payout processor.
type Origin string

const (
	OriginUnknown Origin = ""
	OriginStripe  Origin = "stripe"
	OriginPayPal  Origin = "paypal"
)

// ParseOrigin maps a caller-supplied tag to an origin. Unrecognized tags map
// to OriginUnknown.
func ParseOrigin(s string) Origin {
	switch s {
	case "stripe":
		return OriginStripe
	case "paypal":
		return OriginPayPal
	default:
		return OriginUnknown
	}
}

// Import parses the processor export read from r and appends the payout leg
// pairs to the ledger, then re-sorts every journal. An unknown origin is
// logged and the call is a no-op.
func Import(ledger *bursar.Ledger, origin Origin, r io.Reader) error {
	var err error
	switch origin {
	case OriginStripe:
		err = importStripe(ledger, r)
	case OriginPayPal:
		err = importPayPal(ledger, r)
	default:
		log.Printf("unknown payout origin %q, nothing imported", origin)
		return nil
	}
	if err != nil {
		return err
	}
	ledger.SortByDate()
	return nil
}

// appendSorted date-sorts a batch and appends it to the account journal.
func appendSorted(account *bursar.Account, batch []bursar.Transaction) {
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].Date.Before(batch[j].Date)
	})
	account.Append(batch...)
}

func parseAmount(field, what string, entry int) (bursar.Money, error) {
	m, err := bursar.ParseMoney(field)
	if err != nil {
		return bursar.Money{}, fmt.Errorf("could not parse %s on entry %d: %w", what, entry, err)
	}
	return m, nil
}

func parseDate(field, layout string, entry int) (time.Time, error) {
	d, err := time.Parse(layout, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse payout date on entry %d: %w", entry, err)
	}
	return d, nil
}
