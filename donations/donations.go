// Package donations imports donation-platform exports into the ledger.
//
// Each importer is additive: accepted rows are buffered per target account,
// sorted by date and appended to the existing journal, never replacing it.
// Rows already recorded (by content-addressed id) are skipped with a warning;
// rows that fail to parse abort the whole import before anything is appended.
package donations

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/etnz/bursar"
)

// Origin names a supported donation platform.
type Origin string

const (
	OriginUnknown        Origin = ""
	OriginDonorBox       Origin = "donorbox"
	OriginOpenCollective Origin = "opencollective"
)

// ParseOrigin maps a caller-supplied tag to an origin. Unrecognized tags map
// to OriginUnknown.
func ParseOrigin(s string) Origin {
	switch s {
	case "donorbox":
		return OriginDonorBox
	case "opencollective":
		return OriginOpenCollective
	default:
		return OriginUnknown
	}
}

// Import parses the platform export read from r and appends the donations it
// carries to the ledger, then re-sorts every journal. An unknown origin is
// logged and the call is a no-op.
func Import(ledger *bursar.Ledger, origin Origin, r io.Reader) error {
	var err error
	switch origin {
	case OriginDonorBox:
		err = importDonorBox(ledger, r)
	case OriginOpenCollective:
		err = importOpenCollective(ledger, r)
	default:
		log.Printf("unknown donation origin %q, nothing imported", origin)
		return nil
	}
	if err != nil {
		return err
	}
	ledger.SortByDate()
	return nil
}

// parseAmount parses a decimal amount field, failing with the entry number and
// field name on bad input.
func parseAmount(field, what string, entry int) (bursar.Money, error) {
	m, err := bursar.ParseMoney(field)
	if err != nil {
		return bursar.Money{}, fmt.Errorf("could not parse %s on entry %d: %w", what, entry, err)
	}
	return m, nil
}

// parseDate parses a date field with the given layout, failing with the entry
// number on bad input.
func parseDate(field, layout string, entry int) (time.Time, error) {
	d, err := time.Parse(layout, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse transaction date on entry %d: %w", entry, err)
	}
	return d, nil
}
