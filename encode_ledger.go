package bursar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed wraps any decoding failure of a ledger document.
var ErrMalformed = errors.New("malformed ledger document")

// DecodeLedger decodes a whole ledger document from r.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	dec := json.NewDecoder(r)
	if err := dec.Decode(ledger); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return ledger, nil
}

// EncodeLedger writes the whole ledger document to w in its canonical form.
// The document is written as the ledger stands: sorting the journals is the
// mutating operation's job, not the encoder's, so that what was loaded is
// exactly what gets saved back.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(ledger); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}
